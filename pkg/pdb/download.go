// Go to one of the protein data bank sites and fetch an entry in the
// old PDB format.

package pdb

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andrew-torda/pdbcols/pkg/zwrap"
)

type pdbSite struct {
	urlBase   string
	urlPrefix string // goes in front of the four letter code
	urlSuffix string
	gzipped   bool
}

// pdbSites are the mirrors we know about. It is a variable so tests can
// point it somewhere else.
var pdbSites = []pdbSite{
	{"https://files.rcsb.org/download/", "", ".pdb.gz", true},
	{"https://www.ebi.ac.uk/pdbe/entry-files/download/", "pdb", ".ent", false},
	{"https://ftp.pdbj.org/pub/pdb/data/structures/all/pdb/", "pdb", ".ent.gz", true},
}

// NSites is the number of sites Download can use.
func NSites() int { return len(pdbSites) }

// getHTTP is given a four letter pdb code and returns a reader for the
// entry from site number siteNum. A siteNum that is too big wraps
// around rather than being an error, which makes it easy to cycle
// through the sites. Gzipped sites are decompressed for you.
func getHTTP(acqCode string, siteNum int) (io.ReadCloser, error) {
	if len(acqCode) != 4 {
		return nil, errors.New("acq code should be four char, not " + acqCode)
	}
	siteNum %= len(pdbSites)
	if siteNum < 0 {
		siteNum += len(pdbSites)
	}
	site := pdbSites[siteNum]
	url := site.urlBase + site.urlPrefix + strings.ToLower(acqCode) + site.urlSuffix

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("Wanted %s using %s, got %s", acqCode, url, resp.Status)
	}
	if !site.gzipped {
		return resp.Body, nil
	}
	zr, err := zwrap.Wrap(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return zr, nil
}

// Download fetches an entry such as "1abc" and reads it.
func Download(acqCode string, siteNum int) (*Pdb, error) {
	rdr, err := getHTTP(acqCode, siteNum)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	p, err := New(rdr, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", acqCode, err)
	}
	return p, nil
}
