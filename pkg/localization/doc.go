// Package localization resolves display strings for form items.
//
// Lookups follow a fixed fallback chain. A host table is consulted first
// (Params.TableName, or DefaultHostTable when unset) using the key rewritten
// to the host's key separator; on a miss the bundled default table is
// consulted with the original dotted key; when both miss, the missing handler
// decides the result, which by default is the key itself. Found strings may
// carry "%@" or fmt verbs that are filled from the call arguments.
//
// Tables are flat key/value documents in JSON or YAML, one file per table,
// named after the table (HostUI.yaml defines table "HostUI").
package localization
