package storage

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the field values of records in order. NaN fields
// hash as "NaN", so rows with NULL numerics still fingerprint.
func Fingerprint[T any](records []*T) uint64 {
	digest := xxhash.New()
	for _, record := range records {
		if record == nil {
			_, _ = digest.WriteString("<nil>\n")
			continue
		}
		_, _ = fmt.Fprintf(digest, "%+v\n", *record)
	}
	return digest.Sum64()
}
