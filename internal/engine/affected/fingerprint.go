package affected

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ripple/internal/core/domain"
)

// Fingerprint returns a stable 64-bit hash of the affected set, usable as a
// CI cache key. It digests the canonical string form of every identity in
// result order, which is already canonically sorted, so equal sets always
// produce equal fingerprints.
func Fingerprint(res *domain.AffectedResult) string {
	h := xxhash.New()

	for _, p := range res.Changed {
		_, _ = h.WriteString(p.ID.String())
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0}) // Section separator

	for _, p := range res.Dependents {
		_, _ = h.WriteString(p.ID.String())
		_, _ = h.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

// NewReport converts a result into its serializable artifact form.
func NewReport(res *domain.AffectedResult, baseline string) domain.Report {
	changed := make([]string, len(res.Changed))
	for i, p := range res.Changed {
		changed[i] = p.ID.String()
	}
	dependents := make([]string, len(res.Dependents))
	for i, p := range res.Dependents {
		dependents[i] = p.ID.String()
	}
	return domain.Report{
		Baseline:    baseline,
		Changed:     changed,
		Dependents:  dependents,
		Fingerprint: Fingerprint(res),
	}
}
