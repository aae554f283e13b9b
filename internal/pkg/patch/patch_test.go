//go:build unit

package patch_test

import (
	"testing"
	"time"

	"resource-scheduler/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	current := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	moved := current.Add(2 * time.Hour)

	assert.Equal(t, current, patch.Coalesce(nil, current))
	assert.Equal(t, moved, patch.Coalesce(&moved, current))

	empty := ""
	assert.Equal(t, "", patch.Coalesce(&empty, "Excavation"), "an explicit zero value wins over the fallback")
}
