// Package describe imports and exports Salesforce-style describe metadata
// documents — structured descriptions of remote data-object schemas — to and
// from a directory tree, and fetches the same documents from a remote
// instance.
//
// The importer turns a mixed list of file and directory paths into a flat
// list of leaf metadata files (directories are expanded exactly one level)
// and parses each file into a Document. The exporter persists documents to a
// target directory, one file per document, tolerating a pre-existing
// directory. The fetcher lists object names on a remote connection and
// requests one describe document per name.
//
// Import, export, and fetch all hand unresolved work back to the caller:
// they return slices of Pending handles rather than resolved values, so one
// bad document cannot block or discard its siblings, and callers decide how
// much to await and in what order. Discovery errors (stat, directory
// listing) are batch-fatal and surface before any per-item work starts.
//
// Example usage:
//
//	imp := describe.NewImporter()
//	pendings, err := imp.ImportPaths(ctx, "Account.desc.json", "./schemas")
//	if err != nil {
//	    return err
//	}
//	for _, p := range pendings {
//	    doc, err := p.Wait(ctx)
//	    ...
//	}
package describe
