// Package zaplog builds and installs the global zap logger that optlog
// forwards to in builds with the optlog tag.
//
// A program that enables optlog usually does, in a file built with the
// same tag:
//
//	cfg, err := zaplog.ReadEnv()
//	if err != nil {
//		return err
//	}
//	opts, err := cfg.Options()
//	if err != nil {
//		return err
//	}
//	restore := zaplog.Install(opts...)
//	defer restore()
package zaplog
