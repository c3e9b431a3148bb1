// Package translator owns the process-wide ANGLE shader translator.
package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator *gst.ShaderTranslator
	initErr    error
	once       sync.Once
)

// Get returns the shared translator, creating it on first use.
func Get() (*gst.ShaderTranslator, error) {
	once.Do(func() {
		translator, initErr = gst.NewShaderTranslator(context.Background())
		if initErr != nil {
			initErr = fmt.Errorf("failed to start shader translator: %w", initErr)
		}
	})
	return translator, initErr
}
