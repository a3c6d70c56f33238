package build

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Document roles used in artifact names.
const (
	RoleExam = "exam"
	RoleKey  = "key"
)

// DocumentName derives an artifact name from the source file name, the
// build date, and the document role: <base>_<YYYYMMDD>_<role>.<ext>.
func DocumentName(sourcePath string, date time.Time, role, ext string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return fmt.Sprintf("%s_%s_%s.%s", base, date.Format("20060102"), role, ext)
}
