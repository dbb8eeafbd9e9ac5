//go:build !optlog
// +build !optlog

package optlog

// On reports whether calls forward to zap in this build.
const On = false

type Target string

func Logf(_ Level, _ string, _ ...any) {}
func Tracef(_ string, _ ...any)        {}
func Debugf(_ string, _ ...any)        {}
func Infof(_ string, _ ...any)         {}
func Warnf(_ string, _ ...any)         {}
func Errorf(_ string, _ ...any)        {}

// Enabled is always false without the optlog build tag.
func Enabled(_ Level) bool { return false }

func (Target) Logf(_ Level, _ string, _ ...any) {}
func (Target) Tracef(_ string, _ ...any)        {}
func (Target) Debugf(_ string, _ ...any)        {}
func (Target) Infof(_ string, _ ...any)         {}
func (Target) Warnf(_ string, _ ...any)         {}
func (Target) Errorf(_ string, _ ...any)        {}

func (Target) Enabled(_ Level) bool { return false }
