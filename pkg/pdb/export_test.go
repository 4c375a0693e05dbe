package pdb

// Export some internal functions for testing

var FmtName = fmtName
var GetHTTP = getHTTP

// SetSites points the downloader at a test server and returns a
// function to put the real sites back.
func SetSites(base string) (restore func()) {
	old := pdbSites
	pdbSites = []pdbSite{
		{base + "/gz/", "", ".pdb.gz", true},
		{base + "/plain/", "pdb", ".ent", false},
	}
	return func() { pdbSites = old }
}
