// Package report announces the result of a finished build.
//
// [Print] writes a short human-readable summary to the console. It never
// fails: by the time it runs the artifact already exists, so a broken
// console must not turn a successful build into a failed one. [Write]
// additionally stores the summary as YAML for other tools to pick up.
//
// Example usage:
//
//	s := report.Summary{RunID: id, Name: "MusicalLoto", Artifact: a}
//	report.Print(os.Stdout, s)
//	if err := report.Write("build.yaml", s); err != nil {
//	    return err
//	}
package report
