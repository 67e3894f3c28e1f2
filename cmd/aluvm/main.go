// Command aluvm is the CLI entry point for the ALU-VM tooling: a thin
// cobra wrapper shelling out to asm.Assemble/asm.Disassemble and
// exec.VM's step loop. Grounded on oisee-z80-optimizer's cmd/z80opt/main.go
// (single cobra root, subcommands built inline in main), replacing
// arm-emulator's flag.Bool-based main.go.
//
// spec.md §1 places "any CLI or serialization of assembled libraries
// beyond the raw bytecode blob" out of scope, so every subcommand here
// reads and writes nothing but raw bytecode files — there is no
// invented textual assembly syntax or intermediate instruction format
// to feed asm or disasm.
package main

import (
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aluvm-go/aluvm/asm"
	"github.com/aluvm-go/aluvm/config"
	"github.com/aluvm-go/aluvm/exec"
	"github.com/aluvm-go/aluvm/host"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aluvm",
		Short: "ALU-VM CORE assembler, disassembler, and interpreter",
	}

	rootCmd.AddCommand(newAsmCmd(), newDisasmCmd(), newRunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newAsmCmd round-trips a library's bytecode through Disassemble then
// Assemble, writing the re-encoded bytes to output. For a well-formed
// library the output is byte-identical to the input; a mismatch means
// the file held trailing garbage or an opcode the decoder normalizes
// away on re-encode.
func newAsmCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "asm [library-file]",
		Short: "Validate a library by disassembling then reassembling it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			instructions, err := asm.Disassemble(code, nil)
			if err != nil {
				return fmt.Errorf("disassembling %s: %w", args[0], err)
			}

			reassembled, err := asm.Assemble(instructions, nil)
			if err != nil {
				return fmt.Errorf("reassembling %s: %w", args[0], err)
			}

			if output != "" {
				if err := os.WriteFile(output, reassembled, 0644); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
			}

			fmt.Printf("ok: %d instructions, %d bytes\n", len(instructions), len(reassembled))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the reassembled bytecode here (default: discard)")
	return cmd
}

// newDisasmCmd reports a library's instruction and byte count. Per
// spec.md §1's Non-goals, pretty-printing a disassembly listing is out
// of scope — this prints a one-line summary only.
func newDisasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm [library-file]",
		Short: "Report the instruction count of a library's bytecode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			instructions, err := asm.Disassemble(code, nil)
			if err != nil {
				return fmt.Errorf("disassembling %s: %w", args[0], err)
			}

			fmt.Printf("%d instructions, %d bytes\n", len(instructions), len(code))
			return nil
		},
	}
	return cmd
}

// newRunCmd loads one or more bytecode library files, keyed by the
// sha256 content hash of their bytes, and runs the entry library to
// completion. Library identity is a content hash per spec.md §6's
// LibSite; the concrete hash function is a tooling choice left to this
// CLI (spec.md §1 excludes cryptographic implementations from the core,
// not from the loader that addresses files by hash).
func newRunCmd() *cobra.Command {
	var (
		entryHex    string
		maxCycles   uint64
		enableTrace bool
		traceDepth  int
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "run [library-file...]",
		Short: "Execute a library, or set of libraries, to completion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-cycles") {
				cfg.Execution.MaxCycles = maxCycles
			}
			if cmd.Flags().Changed("trace") {
				cfg.Execution.EnableTrace = enableTrace
			}

			libraries := make(map[[32]byte][]byte, len(args))
			var firstHash [32]byte
			for idx, path := range args {
				code, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				hash := sha256.Sum256(code)
				libraries[hash] = code
				if idx == 0 {
					firstHash = hash
				}
			}

			entry := firstHash
			if entryHex != "" {
				cfg.Execution.DefaultEntry = entryHex
				entry, err = cfg.EntryHash()
				if err != nil {
					return err
				}
			} else if _, ok := libraries[entry]; !ok {
				return fmt.Errorf("run: no library loaded for entry hash %x", entry)
			}

			registry := host.NewRegistry()
			vm := exec.New(entry, libraries, registry)

			if cfg.Execution.EnableTrace {
				vm.Trace = exec.NewTrace(traceDepth)
				vm.Trace.Enabled = true
			}

			ok, cycles, err := runBounded(vm, cfg.Execution.MaxCycles)
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}

			fmt.Printf("st0=%t cycles=%d\n", ok, cycles)
			if vm.Trace != nil {
				fmt.Printf("trace: %d steps recorded\n", len(vm.Trace.Entries()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&entryHex, "entry", "", "hex-encoded 32-byte entry library hash (default: first file)")
	cmd.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "override the configured cycle limit")
	cmd.Flags().BoolVar(&enableTrace, "trace", false, "record an execution trace")
	cmd.Flags().IntVar(&traceDepth, "trace-depth", 256, "maximum trace entries retained")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default: platform config dir)")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// runBounded steps vm until it stops or exceeds maxCycles, since
// exec.VM itself enforces no cycle ceiling beyond cy0's 16-bit counter
// (spec.md §3) — max-cycles is a CLI-level guard against a caller-
// supplied library that spins without ever overflowing cy0's own limit.
func runBounded(vm *exec.VM, maxCycles uint64) (bool, uint64, error) {
	var cycles uint64
	for {
		if maxCycles > 0 && cycles >= maxCycles {
			return false, cycles, fmt.Errorf("exceeded max-cycles (%d)", maxCycles)
		}
		step, err := vm.Step()
		if err != nil {
			return false, cycles, err
		}
		cycles++
		if step.Kind == host.StepStop {
			return vm.Regs.St0, cycles, nil
		}
	}
}
