package crawl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ContentHash returns an xxhash of the content as a hex string, used for
// change detection on stored pages.
func ContentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
