// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for hioload-ring: generic ring interfaces, state
// snapshots, and sentinel errors shared across packages.
package api
