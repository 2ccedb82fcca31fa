// Package actionlink describes UI-triggerable actions: what they are called,
// which HTTP method they use, whether they act on a record, the collection or
// the whole table, and which security method gates them. Unset options fall
// back to a read-only template selected by the link's CRUD type, so a bare
// New("destroy") yields a confirmed, inline DELETE on a member.
package actionlink
