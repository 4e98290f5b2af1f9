/*
SPDX-License-Identifier: Apache-2.0
*/

package store

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"time"
)

// Key prefixes namespace each record type so a range scan can isolate one
// type without a secondary index.
const (
	PrefixCollection  = "COL_"
	PrefixQualityTest = "QT_"
	PrefixProcessing  = "PS_"
	PrefixProvenance  = "PROV_"
)

const suffixLen = 9

// NewID builds a prefixed record id: <PREFIX><tx-millis>_<base36 suffix>.
// The suffix is derived from the transaction id rather than a random
// source, so every endorsing peer computes the same id while distinct
// transactions still get distinct ids, including two submissions with
// identical arguments.
func NewID(prefix, txID string, at time.Time) string {
	h := fnv.New64a()
	h.Write([]byte(txID))
	h.Write([]byte{'|'})
	h.Write([]byte(prefix))

	suffix := strconv.FormatUint(h.Sum64(), 36)
	if len(suffix) > suffixLen {
		suffix = suffix[:suffixLen]
	}
	for len(suffix) < suffixLen {
		suffix = "0" + suffix
	}
	return fmt.Sprintf("%s%d_%s", prefix, at.UnixMilli(), suffix)
}
