package reconcile

import (
	"github.com/agentstation/e2settings/pkg/constants"
	"github.com/agentstation/e2settings/pkg/settings"
)

// RemoveEmptyMarkers removes markers that head no entries: a marker that is
// the last item of its bouquet or is directly followed by another marker.
// Markers for which keep returns true are left alone; keep may be nil.
// Bouquets are scanned from the end so removals do not shift pending
// indices.
func (e *Engine) RemoveEmptyMarkers(keep func(*settings.BouquetItem) bool) (*Report, error) {
	return e.run("RemoveEmptyMarkers", func(r *Report) error {
		for _, b := range e.settings.Bouquets {
			for i := len(b.Items) - 1; i >= 0; i-- {
				item := b.Items[i]
				if item.Kind != settings.ItemMarker {
					continue
				}
				last := i == len(b.Items)-1
				if !last && b.Items[i+1].Kind != settings.ItemMarker {
					continue
				}
				if keep != nil && keep(item) {
					continue
				}
				b.RemoveItemAt(i)
				r.Removed++
				e.logger.Debug().Str("bouquet", b.Name).Str("marker", item.Label()).Msg("Removed empty marker")
			}
		}
		return nil
	})
}

// RemoveEmptyBouquets removes bouquets without items, and the references
// to them. The bouquets.tv and bouquets.radio index files are kept.
func (e *Engine) RemoveEmptyBouquets() (*Report, error) {
	return e.run("RemoveEmptyBouquets", func(r *Report) error {
		removedFiles := make(map[string]bool)
		removedOrders := make(map[int64]bool)

		kept := e.settings.Bouquets[:0]
		for _, b := range e.settings.Bouquets {
			if len(b.Items) > 0 || isIndexBouquet(b) {
				kept = append(kept, b)
				continue
			}
			if b.IsFile() {
				removedFiles[b.BaseName()] = true
			} else {
				removedOrders[b.Order] = true
			}
			r.Removed++
			e.logger.Debug().Str("bouquet", b.Name).Msg("Removed empty bouquet")
		}
		clearTail(e.settings.Bouquets, len(kept))
		e.settings.Bouquets = kept

		for _, b := range e.settings.Bouquets {
			r.Removed += b.RemoveItemsFunc(func(item *settings.BouquetItem) bool {
				switch item.Kind {
				case settings.ItemFileBouquet:
					return removedFiles[baseName(item.RefFileName())]
				case settings.ItemLegacyBouquet:
					return removedOrders[item.RefOrder()]
				}
				return false
			})
		}
		return nil
	})
}

// RemoveStreams removes every IPTV stream item.
func (e *Engine) RemoveStreams() (*Report, error) {
	return e.run("RemoveStreams", func(r *Report) error {
		for _, b := range e.settings.Bouquets {
			r.Removed += b.RemoveItemsFunc(func(item *settings.BouquetItem) bool {
				return item.Kind == settings.ItemStream
			})
		}
		return nil
	})
}

// RemoveInvalidBouquetItems removes service, file bouquet and legacy
// bouquet items whose reference does not resolve. Markers and streams are
// never touched.
func (e *Engine) RemoveInvalidBouquetItems() (*Report, error) {
	return e.run("RemoveInvalidBouquetItems", func(r *Report) error {
		index := e.settings.ServiceIndex()
		for _, b := range e.settings.Bouquets {
			r.Removed += b.RemoveItemsFunc(func(item *settings.BouquetItem) bool {
				var ok bool
				switch item.Kind {
				case settings.ItemService:
					_, ok = index[item.ServiceID()]
				case settings.ItemFileBouquet:
					_, ok = e.settings.FileBouquet(item.RefFileName())
				case settings.ItemLegacyBouquet:
					_, ok = e.settings.LegacyBouquet(item.RefOrder())
				default:
					return false
				}
				if !ok {
					r.warn("removed unresolvable %s item %s from %q", item.Kind, item.Line(), b.Name)
				}
				return !ok
			})
		}
		return nil
	})
}

// RemoveDuplicateBouquetItems keeps the first occurrence of each service
// and bouquet reference within a bouquet.
func (e *Engine) RemoveDuplicateBouquetItems() (*Report, error) {
	return e.run("RemoveDuplicateBouquetItems", func(r *Report) error {
		for _, b := range e.settings.Bouquets {
			seen := make(map[string]bool)
			r.Removed += b.RemoveItemsFunc(func(item *settings.BouquetItem) bool {
				var key string
				switch item.Kind {
				case settings.ItemService:
					key = "s:" + item.ServiceID().String()
				case settings.ItemFileBouquet:
					key = "f:" + baseName(item.RefFileName())
				case settings.ItemLegacyBouquet:
					key = "l:" + item.Line()
				default:
					return false
				}
				if seen[key] {
					return true
				}
				seen[key] = true
				return false
			})
		}
		return nil
	})
}

func isIndexBouquet(b *settings.Bouquet) bool {
	name := b.BaseName()
	return b.IsFile() && (name == constants.TVBouquetsFile || name == constants.RadioBouquetFile)
}
