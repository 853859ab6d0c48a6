// Package workflow orchestrates the bilingual report pipeline: compose
// the English report, then run the terminology-preserving translation,
// as a state graph so each stage can be observed and extended
// independently.
package workflow

import (
	"log/slog"

	"github.com/kmoussa/dragoman/internal/reports"
	"github.com/kmoussa/dragoman/internal/translator"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Domain systems.
type Runtime struct {
	Reports    reports.System
	Translator translator.System
	Logger     *slog.Logger
}
