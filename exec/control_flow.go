package exec

import (
	"fmt"

	"github.com/aluvm-go/aluvm/host"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/reg"
	"github.com/aluvm-go/aluvm/regfile"
)

// execControlFlow runs the Fail/Succ/Jmp/Jif/Routine/Call/Exec/Ret/Nop
// family (spec.md §4.3.1). curLib and nextPC are the calling VM's
// current library hash and the offset one past the instruction just
// decoded, needed to compute Routine's and Call's return sites.
func execControlFlow(f *regfile.RegisterFile, curLib [32]byte, nextPC uint16, i instr.Instruction) (host.Step, error) {
	switch v := i.(type) {
	case instr.Fail:
		f.St0 = false
		return host.Step{Kind: host.StepStop}, nil

	case instr.Succ:
		f.St0 = true
		return host.Step{Kind: host.StepStop}, nil

	case instr.Nop:
		return host.Step{Kind: host.StepNext}, nil

	case instr.Jmp:
		if !f.Jmp() {
			f.St0 = false
			return host.Step{Kind: host.StepStop}, nil
		}
		return host.Step{Kind: host.StepJump, Offset: v.Offset}, nil

	case instr.Jif:
		if !f.St0 {
			return host.Step{Kind: host.StepNext}, nil
		}
		if !f.Jmp() {
			f.St0 = false
			return host.Step{Kind: host.StepStop}, nil
		}
		return host.Step{Kind: host.StepJump, Offset: v.Offset}, nil

	case instr.Routine:
		if !f.Jmp() {
			f.St0 = false
			return host.Step{Kind: host.StepStop}, nil
		}
		if !f.PushReturn(reg.LibSite{LibHash: curLib, Offset: nextPC}) {
			f.St0 = false
			return host.Step{Kind: host.StepStop}, nil
		}
		return host.Step{Kind: host.StepJump, Offset: v.Offset}, nil

	case instr.Call:
		if !f.Call(reg.LibSite{LibHash: curLib, Offset: nextPC}) {
			f.St0 = false
			return host.Step{Kind: host.StepStop}, nil
		}
		return host.Step{Kind: host.StepCall, Site: v.Site}, nil

	case instr.Exec:
		// Exec touches neither cp0 nor cs0 (spec.md §4.3.1): it is a
		// tail call, so there is nothing to return to.
		return host.Step{Kind: host.StepCall, Site: v.Site}, nil

	case instr.Ret:
		site, ok := f.Ret()
		if !ok {
			f.St0 = false
			return host.Step{Kind: host.StepStop}, nil
		}
		return host.Step{Kind: host.StepCall, Site: site}, nil

	default:
		return host.Step{}, fmt.Errorf("exec: unhandled control-flow instruction %T", i)
	}
}
