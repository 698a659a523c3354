// Package catalog loads validation message overrides and attribute labels from
// JSON or YAML files.
//
// A catalog file has two optional sections:
//
//	messages:
//	  required: "The :attribute field cannot be blank."
//	  email:
//	    unique: "This email is already registered."
//	attributes:
//	  first_name: "first name"
//
// Catalogs plug into the validator with validator.WithCatalog.
package catalog
