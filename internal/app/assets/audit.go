// internal/app/assets/audit.go
package assets

// Asset kinds reported by Audit.
const (
	KindImage = "image"
	KindText  = "text"
)

// Missing describes one asset that a selection resolves to but that is not on disk.
type Missing struct {
	Label Selection `json:"selection"`
	Kind  string    `json:"kind"` // KindImage or KindText
	Path  string    `json:"path"`
}

// Report is the result of auditing a set of selections against the data root.
type Report struct {
	Checked int
	Missing []Missing
}

// OK reports whether every audited asset was found.
func (rep Report) OK() bool { return len(rep.Missing) == 0 }

// Audit resolves every label and checks that both of its assets exist. For
// labels with extra images, those are checked in place of the main image.
// Missing assets are expected in a partially exported report, so they are
// collected rather than treated as errors.
func Audit(r *Resolver, labels []Selection) Report {
	rep := Report{}
	for _, label := range labels {
		res := r.Resolve(label)
		rep.Checked++

		for _, x := range res.Extras {
			if !regularFile(x.Path) {
				rep.Missing = append(rep.Missing, Missing{Label: label, Kind: KindImage, Path: x.Path})
			}
		}
		if len(res.Extras) == 0 && !regularFile(res.ImagePath) {
			rep.Missing = append(rep.Missing, Missing{Label: label, Kind: KindImage, Path: res.ImagePath})
		}
		if !regularFile(res.TextPath) {
			rep.Missing = append(rep.Missing, Missing{Label: label, Kind: KindText, Path: res.TextPath})
		}
	}
	return rep
}
