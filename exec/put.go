package exec

import (
	"fmt"

	"github.com/aluvm-go/aluvm/host"
	"github.com/aluvm-go/aluvm/instr"
	"github.com/aluvm-go/aluvm/regfile"
)

// execPut runs the ZeroA/ZeroR/ClA/ClR/PutA/PutR/PutIfA/PutIfR family
// (spec.md §4.3.2), each a direct delegation to the matching
// regfile.RegisterFile method.
func execPut(f *regfile.RegisterFile, i instr.Instruction) (host.Step, error) {
	switch v := i.(type) {
	case instr.ZeroA:
		f.ZeroA(v.Family, v.Index)
	case instr.ZeroR:
		f.ZeroR(v.Family, v.Index)
	case instr.ClA:
		f.ClA(v.Family, v.Index)
	case instr.ClR:
		f.ClR(v.Family, v.Index)
	case instr.PutA:
		f.SetA(v.Family, v.Index, v.Value)
	case instr.PutR:
		f.SetR(v.Family, v.Index, v.Value)
	case instr.PutIfA:
		f.PutIfA(v.Family, v.Index, v.Value)
	case instr.PutIfR:
		f.PutIfR(v.Family, v.Index, v.Value)
	default:
		return host.Step{}, fmt.Errorf("exec: unhandled put instruction %T", i)
	}
	return host.Step{Kind: host.StepNext}, nil
}
