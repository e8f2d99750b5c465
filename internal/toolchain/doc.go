// Package toolchain prepares the isolated Python environment a build runs in.
//
// [Detect] inspects an environment directory and reports one of two states:
// [Ready], when the environment's activation script exists (or the user
// named an interpreter that exists), or [NeedsProvisioning]. A [Provisioner]
// consumes the state. A ready environment is reused without side effects.
// A missing one is created with the system Python's venv module, after which
// pip is upgraded and the fixed dependency set is installed into it. When
// provisioning is disabled a missing environment is a fatal error.
//
// Activation is expressed as environment variables applied to every command
// run inside the environment (see [Ready.Activate]) rather than by sourcing a
// shell script.
//
// Example usage:
//
//	state := toolchain.Detect(toolchain.Environment{
//	    RootDir:     layout.EnvironmentDir,
//	    Interpreter: layout.Interpreter,
//	}, platform)
//
//	prov := toolchain.NewProvisioner(r, platform, true)
//	ready, err := prov.Provision(ctx, state, []string{"pyinstaller", "PyQt6"})
//	if err != nil {
//	    return err
//	}
package toolchain
