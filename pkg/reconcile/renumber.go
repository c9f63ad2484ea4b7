package reconcile

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/fieldcodec"
	"github.com/agentstation/e2settings/pkg/settings"
)

// RenumberMarkers numbers every marker by its zero based position among all
// markers, bouquet by bouquet, as uppercase hex.
func (e *Engine) RenumberMarkers() (*Report, error) {
	return e.run("RenumberMarkers", func(r *Report) error {
		n := 0
		for _, b := range e.settings.Bouquets {
			for _, item := range b.Items {
				if item.Kind != settings.ItemMarker {
					continue
				}
				if item.MarkerNumber() != fieldcodec.FormatUpperHex(int64(n)) {
					item.SetMarkerNumber(n)
					r.Renamed++
				}
				n++
			}
		}
		return nil
	})
}

// RenumberBouquetFileNames renames the TV and radio bouquet files that
// follow the userbouquet.dbe<NN> scheme to a gap free sequence, in order
// of their current file names. Other files keep their names and take no
// number. References in other bouquets follow the renames.
func (e *Engine) RenumberBouquetFileNames() (*Report, error) {
	return e.run("RenumberBouquetFileNames", func(r *Report) error {
		renames := make(map[string]string)
		for _, kind := range []settings.BouquetKind{settings.BouquetTV, settings.BouquetRadio} {
			var numbered []*settings.Bouquet
			for _, b := range e.settings.FileBouquets(kind) {
				if strings.HasPrefix(b.BaseName(), constants.UserBouquetPrefix) {
					numbered = append(numbered, b)
				}
			}
			sort.SliceStable(numbered, func(i, j int) bool {
				return numbered[i].FileName < numbered[j].FileName
			})

			ext := constants.TVExtension
			if kind == settings.BouquetRadio {
				ext = constants.RadioExtension
			}
			for i, b := range numbered {
				name := fmt.Sprintf("%s%02d%s", constants.UserBouquetPrefix, i, ext)
				if b.BaseName() == name {
					continue
				}
				old := b.FileName
				b.FileName = withDir(b.FileName, name)
				renames[path.Base(old)] = name
				r.Renamed++
				r.Renames = append(r.Renames, Rename{From: old, To: b.FileName})
				e.logger.Debug().Str("from", old).Str("to", b.FileName).Msg("Renamed bouquet file")
			}
		}
		if len(renames) == 0 {
			return nil
		}

		for _, b := range e.settings.Bouquets {
			for _, item := range b.Items {
				if item.Kind != settings.ItemFileBouquet {
					continue
				}
				ref := item.RefFileName()
				if name, ok := renames[baseName(ref)]; ok {
					item.SetRefFileName(withDir(ref, name))
					r.Updated++
				}
			}
		}
		return nil
	})
}

// withDir replaces the base name of p, keeping any directory prefix.
func withDir(p, name string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[:i+1] + name
	}
	return name
}

func baseName(p string) string {
	return path.Base(p)
}
