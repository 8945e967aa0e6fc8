// Package mapping provides the YAML mapping file format, the transform
// registry, and validation of mapping files into modelmap specifications.
//
// A mapping file declares named specifications so that they can be reviewed
// and changed without touching Go code.
//
// # Schema Overview
//
//	version: "1"
//	mappings:
//	  - name: user
//	    description: users API payload
//	    # Direct entries, model key -> wire key, in document order.
//	    121:
//	      id: id
//	      username: userName
//	    # Full entries, applied after the 121 block.
//	    entries:
//	      - model: email
//	        wire: email_address
//	      - model: isAdmin
//	        to_model: SplitAdminPermission
//	        to_wire: JoinAdminPermission
//	      - model: fetchedAt
//	        to_model: Now
//	        to_wire: null          # not written back
//	transforms:
//	  - name: SplitAdminPermission
//	    expr: '{"isAdmin": "admin" in user_perms, "permissions": filter(user_perms, # != "admin")}'
//	  - name: JoinAdminPermission  # Go function registered under this name
//
// # Entries
//
// An entry with a "wire" key is direct. An entry that declares "to_model"
// or "to_wire" (even as null) is a transform entry. A transform entry with
// null in both slots never contributes; it is accepted but reported as a
// warning. The short forms [model, wire] and [model, to_model, to_wire]
// are accepted too.
//
// # Transforms
//
// Entries name their transforms. A name resolves first to a transform
// declared in the file, then to a Go function in the Registry. Declared
// transforms either carry an expr-lang expression evaluated against the
// source record (it must produce a map) or name a registered Go function
// with "func" (defaulting to the transform name).
package mapping
