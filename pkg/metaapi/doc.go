// Package metaapi exposes resolved scaffold configurations over a read-only
// JSON API built on gin.
//
//	GET /meta                        model list
//	GET /meta/:model                 actions, links and list defaults
//	GET /meta/:model/columns?action= resolved columns in action order
package metaapi
