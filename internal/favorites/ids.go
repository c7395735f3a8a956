package favorites

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	itemIDPrefix  = "nav"
	groupIDPrefix = "group"
)

// newID builds "<prefix>-<unix millis>-<random>". The random part alone is
// unique; the timestamp keeps ids roughly sortable when read by humans.
func newID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return prefix + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}
