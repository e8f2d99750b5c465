// Package pipeline runs a build from start to finish.
//
// A build is an ordered list of steps, each of which moves the run to the
// next [State]:
//
//	Start -> PathsResolved -> EnvironmentReady -> [Cleaned] -> Bundled -> Reported
//
// The cleaning step is skipped when the configuration disables it. Steps
// run sequentially and the first failure moves the run to [Failed], which
// is terminal. Nothing is retried and a failed run cannot be resumed; the
// next invocation starts over from [Start]. Every transition is checked
// against the table in state.go, so a step that would skip ahead is a
// programming error reported as [ErrTransition].
//
// Each run carries a random identifier that is attached to every log record
// it emits and to the optional YAML report.
//
// Example usage:
//
//	cfg, err := project.Load(root, platform)
//	if err != nil {
//	    return err
//	}
//	result, err := pipeline.Run(ctx, pipeline.Options{
//	    Root:     root,
//	    Platform: platform,
//	    Config:   cfg,
//	})
package pipeline
