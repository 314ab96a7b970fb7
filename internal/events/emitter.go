package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var Emit = func(ctx context.Context, name string, evt ScanEvent) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt ScanEvent) {
		if evt.CaseID == "" {
			if caseID := CaseFromContext(ctx); caseID != "" {
				evt.CaseID = caseID
			}
		}

		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt ScanEvent)) {
	if f == nil {
		Emit = func(context.Context, string, ScanEvent) {}
		return
	}
	Emit = func(ctx context.Context, name string, evt ScanEvent) {
		if evt.CaseID == "" {
			if caseID := CaseFromContext(ctx); caseID != "" {
				evt.CaseID = caseID
			}
		}
		f(ctx, name, evt)
	}
}
