// Package overrides loads declarative column and action customisations from
// YAML or JSON documents and applies them to a config.Core.
//
//	models:
//	  Article:
//	    label: Posts
//	    virtual_columns: [word_count]
//	    columns:
//	      title:
//	        label: Headline
//	        form_ui: textarea
//	        sort: {sql: "lower(title)"}
//	      author:
//	        link: {action: show, popup: true}
//	    actions:
//	      list:
//	        exclude: [body]
//	        per_page: 30
//	      delete:
//	        link: {confirm: false}
//
// Unknown keys are rejected. Labels are reduced to plain text and
// descriptions are sanitised before they reach the configuration.
package overrides
