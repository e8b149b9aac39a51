package catalog

// The translation table, versioned against the upstream compiletest
// directive vocabulary. Unsupported entries keep the catalog total over
// the known vocabulary: they render as passthrough comments so dropped
// semantics stay visible in the translated file.
var rules = []Rule{
	// Pass/fail expectations. Error expectations themselves come from
	// inline annotations and the stderr file, so the *-fail directives
	// only pin the dg-do action.
	{Name: "check-pass", Family: FamilyPassFail, Template: `// { dg-do compile }`, Arity: ArityZero, Supported: true},
	{Name: "check-fail", Family: FamilyPassFail, Template: `// { dg-do compile }`, Arity: ArityZero, Supported: true},
	{Name: "build-pass", Family: FamilyPassFail, Template: `// { dg-do assemble }`, Arity: ArityZero, Supported: true},
	{Name: "build-fail", Family: FamilyPassFail, Template: `// { dg-do assemble }`, Arity: ArityZero, Supported: true},
	{Name: "run-pass", Family: FamilyPassFail, Template: `// { dg-do run }`, Arity: ArityZero, Supported: true},
	{Name: "run-fail", Family: FamilyPassFail, Template: `// { dg-shouldfail "run-fail" }`, Arity: ArityZero, Supported: true},
	{Name: "compile-pass", Family: FamilyPassFail, Template: `// { dg-do compile }`, Arity: ArityZero, Supported: true},
	{Name: "compile-fail", Family: FamilyPassFail, Template: `// { dg-do compile }`, Arity: ArityZero, Supported: true},
	{Name: "known-bug", Family: FamilyPassFail, Arity: ArityOne, Supported: false},
	{Name: "should-ice", Family: FamilyPassFail, Arity: ArityZero, Supported: false},
	{Name: "should-fail", Family: FamilyPassFail, Arity: ArityZero, Supported: false},
	{Name: "run-crash", Family: FamilyPassFail, Arity: ArityZero, Supported: false},

	// Auxiliary build units. Declaration order is preserved by the
	// emitter because auxiliary units may depend on each other.
	{Name: "aux-build", Family: FamilyBuildAux, Template: `// { dg-additional-sources "%s" }`, Arity: ArityOne, Supported: true},
	{Name: "aux-crate", Family: FamilyBuildAux, Template: `// { dg-additional-sources "%s" }`, Arity: ArityKeyValue, Supported: true},
	{Name: "aux-bin", Family: FamilyBuildAux, Arity: ArityOne, Supported: false},
	{Name: "aux-codegen-backend", Family: FamilyBuildAux, Arity: ArityOne, Supported: false},
	{Name: "build-aux-docs", Family: FamilyBuildAux, Arity: ArityZero, Supported: false},

	// Pretty-printer tests have no DejaGnu counterpart.
	{Name: "pretty-mode", Family: FamilyPretty, Arity: ArityOne, Supported: false},
	{Name: "pretty-compare-only", Family: FamilyPretty, Arity: ArityZero, Supported: false},
	{Name: "pretty-expanded", Family: FamilyPretty, Arity: ArityZero, Supported: false},
	{Name: "pp-exact", Family: FamilyPretty, Arity: ArityOne, Supported: false},

	// Platform predicates. Template holds the DejaGnu target selector;
	// only-* entries are inverted at emission.
	{Name: "ignore-windows", Family: FamilyPlatform, Template: `*-*-mingw*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-linux", Family: FamilyPlatform, Template: `*-*-linux*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-macos", Family: FamilyPlatform, Template: `*-*-darwin*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-apple", Family: FamilyPlatform, Template: `*-*-darwin*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-ios", Family: FamilyPlatform, Template: `*-*-ios*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-android", Family: FamilyPlatform, Template: `*-*-android*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-fuchsia", Family: FamilyPlatform, Template: `*-*-fuchsia*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-freebsd", Family: FamilyPlatform, Template: `*-*-freebsd*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-netbsd", Family: FamilyPlatform, Template: `*-*-netbsd*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-openbsd", Family: FamilyPlatform, Template: `*-*-openbsd*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-solaris", Family: FamilyPlatform, Template: `*-*-solaris*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-illumos", Family: FamilyPlatform, Template: `*-*-illumos*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-haiku", Family: FamilyPlatform, Template: `*-*-haiku*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-emscripten", Family: FamilyPlatform, Template: `*-*-emscripten*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-wasm", Family: FamilyPlatform, Template: `wasm*-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-wasm32", Family: FamilyPlatform, Template: `wasm32-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-wasm64", Family: FamilyPlatform, Template: `wasm64-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-x86", Family: FamilyPlatform, Template: `i?86-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-x86_64", Family: FamilyPlatform, Template: `x86_64-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-aarch64", Family: FamilyPlatform, Template: `aarch64-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-arm", Family: FamilyPlatform, Template: `arm*-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-thumb", Family: FamilyPlatform, Template: `thumb*-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-riscv64", Family: FamilyPlatform, Template: `riscv64-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-sparc64", Family: FamilyPlatform, Template: `sparc64-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-powerpc", Family: FamilyPlatform, Template: `powerpc*-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-s390x", Family: FamilyPlatform, Template: `s390x-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-loongarch64", Family: FamilyPlatform, Template: `loongarch64-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-mips", Family: FamilyPlatform, Template: `mips*-*-*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-gnu", Family: FamilyPlatform, Template: `*-*-gnu*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-musl", Family: FamilyPlatform, Template: `*-*-musl*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-msvc", Family: FamilyPlatform, Template: `*-*-msvc*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-uwp", Family: FamilyPlatform, Template: `*-*-uwp*`, Arity: ArityZero, Supported: true},
	{Name: "ignore-32bit", Family: FamilyPlatform, Template: `ilp32`, Arity: ArityZero, Supported: true},
	{Name: "ignore-64bit", Family: FamilyPlatform, Template: `lp64`, Arity: ArityZero, Supported: true},
	{Name: "ignore-endian-big", Family: FamilyPlatform, Template: `be`, Arity: ArityZero, Supported: true},
	{Name: "ignore-cross-compile", Family: FamilyPlatform, Arity: ArityZero, Supported: false},
	{Name: "ignore-remote", Family: FamilyPlatform, Arity: ArityZero, Supported: false},
	{Name: "ignore-stage1", Family: FamilyPlatform, Arity: ArityZero, Supported: false},
	{Name: "ignore-stage2", Family: FamilyPlatform, Arity: ArityZero, Supported: false},
	{Name: "ignore-test", Family: FamilyPlatform, Arity: ArityZero, Supported: false},

	{Name: "only-windows", Family: FamilyPlatform, Template: `*-*-mingw*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-linux", Family: FamilyPlatform, Template: `*-*-linux*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-macos", Family: FamilyPlatform, Template: `*-*-darwin*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-apple", Family: FamilyPlatform, Template: `*-*-darwin*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-unix", Family: FamilyPlatform, Template: `*-*-mingw*`, Arity: ArityZero, Supported: true},
	{Name: "only-x86", Family: FamilyPlatform, Template: `i?86-*-*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-x86_64", Family: FamilyPlatform, Template: `x86_64-*-*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-aarch64", Family: FamilyPlatform, Template: `aarch64-*-*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-arm", Family: FamilyPlatform, Template: `arm*-*-*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-riscv64", Family: FamilyPlatform, Template: `riscv64-*-*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-wasm32", Family: FamilyPlatform, Template: `wasm32-*-*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-gnu", Family: FamilyPlatform, Template: `*-*-gnu*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-musl", Family: FamilyPlatform, Template: `*-*-musl*`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-32bit", Family: FamilyPlatform, Template: `ilp32`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-64bit", Family: FamilyPlatform, Template: `lp64`, Arity: ArityZero, Supported: true, Invert: true},
	{Name: "only-nightly", Family: FamilyPlatform, Arity: ArityZero, Supported: false},
	{Name: "only-stable", Family: FamilyPlatform, Arity: ArityZero, Supported: false},
	{Name: "only-beta", Family: FamilyPlatform, Arity: ArityZero, Supported: false},

	// Environment variables.
	{Name: "rustc-env", Family: FamilyEnvVar, Template: `// { dg-set-compiler-env-var %s }`, Arity: ArityKeyValue, Supported: true},
	{Name: "exec-env", Family: FamilyEnvVar, Template: `// { dg-set-target-env-var %s }`, Arity: ArityKeyValue, Supported: true},
	{Name: "unset-rustc-env", Family: FamilyEnvVar, Arity: ArityOne, Supported: false},
	{Name: "unset-exec-env", Family: FamilyEnvVar, Arity: ArityOne, Supported: false},

	// Miscellaneous.
	{Name: "edition", Family: FamilyMisc, Template: `// { dg-additional-options "-frust-edition=%s" }`, Arity: ArityOne, Supported: true},
	{Name: "compile-flags", Family: FamilyMisc, Template: `// { dg-additional-options "%s" }`, Arity: ArityOne, Supported: true},
	{Name: "run-flags", Family: FamilyMisc, Arity: ArityOne, Supported: false},
	{Name: "revisions", Family: FamilyMisc, Arity: ArityOne, Supported: false},
	{Name: "error-pattern", Family: FamilyMisc, Template: `// { dg-excess-errors "%s" }`, Arity: ArityOne, Supported: true},
	{Name: "regex-error-pattern", Family: FamilyMisc, Arity: ArityOne, Supported: false},
	{Name: "forbid-output", Family: FamilyMisc, Template: `// { dg-bogus "%s" }`, Arity: ArityOne, Supported: true},
	{Name: "normalize-stderr-test", Family: FamilyMisc, Template: `// { dg-prune-output "%s" }`, Arity: ArityOne, Supported: true},
	{Name: "normalize-stderr-32bit", Family: FamilyMisc, Template: `// { dg-prune-output "%s" }`, Arity: ArityOne, Supported: true},
	{Name: "normalize-stderr-64bit", Family: FamilyMisc, Template: `// { dg-prune-output "%s" }`, Arity: ArityOne, Supported: true},
	{Name: "normalize-stdout-test", Family: FamilyMisc, Arity: ArityOne, Supported: false},
	{Name: "dont-check-compiler-stderr", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "dont-check-compiler-stdout", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "dont-check-failure-status", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "check-stdout", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "check-run-results", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "failure-status", Family: FamilyMisc, Arity: ArityOne, Supported: false},
	{Name: "incremental", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "no-prefer-dynamic", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "no-auto-check-cfg", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "force-host", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "remap-src-base", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "run-rustfix", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "rustfix-only-machine-applicable", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "stderr-per-bitwidth", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "unique-doc-out-dir", Family: FamilyMisc, Arity: ArityZero, Supported: false},
	{Name: "doc-flags", Family: FamilyMisc, Arity: ArityOne, Supported: false},
	{Name: "unused-revision-names", Family: FamilyMisc, Arity: ArityOne, Supported: false},

	// Assembly and codegen.
	{Name: "assembly-output", Family: FamilyAssembly, Template: `// { dg-do assemble }`, Arity: ArityOne, Supported: true},
	{Name: "min-llvm-version", Family: FamilyAssembly, Arity: ArityOne, Supported: false},
	{Name: "min-system-llvm-version", Family: FamilyAssembly, Arity: ArityOne, Supported: false},
	{Name: "max-llvm-major-version", Family: FamilyAssembly, Arity: ArityOne, Supported: false},
	{Name: "needs-llvm-components", Family: FamilyAssembly, Arity: ArityOne, Supported: false},
	{Name: "llvm-cov-flags", Family: FamilyAssembly, Arity: ArityOne, Supported: false},
	{Name: "filecheck-flags", Family: FamilyAssembly, Arity: ArityOne, Supported: false},
	{Name: "needs-asm-support", Family: FamilyAssembly, Arity: ArityZero, Supported: false},

	// External tool requirements.
	{Name: "needs-sanitizer-support", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-sanitizer-address", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-sanitizer-leak", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-sanitizer-memory", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-sanitizer-thread", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-profiler-support", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-profiler-runtime", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-rust-lld", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-dlltool", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-git-hash", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-dynamic-linking", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-relocation-model-pic", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-unwind", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-threads", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-subprocess", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-symlink", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "needs-xray", Family: FamilyTool, Arity: ArityZero, Supported: false},
	{Name: "min-gdb-version", Family: FamilyTool, Arity: ArityOne, Supported: false},
	{Name: "min-lldb-version", Family: FamilyTool, Arity: ArityOne, Supported: false},
	{Name: "min-cdb-version", Family: FamilyTool, Arity: ArityOne, Supported: false},
}
