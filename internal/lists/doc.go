// Package lists rewrites rule list files on disk: it discovers them under
// the configured directory sets, applies the per-line transforms from the
// rules package, keeps a backup copy of each file before overwriting it,
// and removes those backups again on request.
package lists
