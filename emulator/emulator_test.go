package emulator_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/mmonicaama/Cpu-simulator/cpu"
	"github.com/mmonicaama/Cpu-simulator/emulator"
)

func writeProgram(lines ...string) string {
	path := filepath.Join(GinkgoT().TempDir(), "prog.asm")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
	Expect(err).NotTo(HaveOccurred())
	return path
}

var _ = Describe("Emulator", func() {
	var emu *emulator.Emulator

	BeforeEach(func() {
		emu = emulator.NewEmulator(cpu.MEMORY_SIZE, zap.NewNop())
	})

	Context("End to end", func() {
		It("should add and compare", func() {
			Expect(emu.LoadFile(writeProgram("MOV AYB , 5", "ADD AYB , 3", "CMP AYB , 8"))).To(Succeed())
			Expect(emu.Run(context.Background())).To(Succeed())
			Expect(emu.Register[cpu.REG_AYB]).To(Equal(int32(8)))
			Expect(emu.Register[cpu.REG_DA]).To(Equal(int32(0)))
			Expect(emu.Faulted()).To(BeFalse())
			Expect(emu.Ticks()).To(Equal(3))
		})

		It("should fault on divide by zero", func() {
			Expect(emu.LoadFile(writeProgram("DIV AYB , 0"))).To(Succeed())

			err := emu.Run(context.Background())
			Expect(err).To(MatchError(cpu.ErrDivideByZero))

			var runtime *emulator.ErrRuntime
			Expect(err).To(BeAssignableToTypeOf(runtime))
			Expect(err.(*emulator.ErrRuntime).LineNo).To(Equal(1))

			Expect(emu.Faulted()).To(BeTrue())
			Expect(emu.Register[cpu.REG_AYB]).To(Equal(int32(0)))
		})

		It("should skip over code", func() {
			Expect(emu.LoadFile(writeProgram("JMP skip:", "MOV AYB , 99", "skip: MOV BEN , 1"))).To(Succeed())
			Expect(emu.Run(context.Background())).To(Succeed())
			Expect(emu.Register[cpu.REG_AYB]).To(Equal(int32(0)))
			Expect(emu.Register[cpu.REG_BEN]).To(Equal(int32(1)))
		})

		It("should refuse programs larger than memory", func() {
			var lines []string
			for n := range 40 {
				lines = append(lines, fmt.Sprintf("MOV AYB , %d", n))
			}

			Expect(emu.LoadFile(writeProgram(lines...))).To(MatchError(cpu.ErrCapacity))
			Expect(emu.Faulted()).To(BeTrue())

			err := emu.Run(context.Background())
			Expect(err).To(MatchError(cpu.ErrCapacity))
			Expect(emu.Ticks()).To(Equal(0))
		})
	})

	Context("Loading", func() {
		It("should fault on a missing file", func() {
			err := emu.LoadFile(filepath.Join(GinkgoT().TempDir(), "missing.asm"))
			Expect(err).To(MatchError(cpu.ErrProgramOpen))
			Expect(emu.Faulted()).To(BeTrue())
			Expect(emu.Program.Len()).To(Equal(0))
		})

		It("should rerun after a reset", func() {
			Expect(emu.LoadFile(writeProgram("ADD AYB , 2"))).To(Succeed())
			Expect(emu.Run(context.Background())).To(Succeed())
			Expect(emu.Reset()).To(Succeed())
			Expect(emu.Run(context.Background())).To(Succeed())
			Expect(emu.Register[cpu.REG_AYB]).To(Equal(int32(2)))
		})
	})

	Context("Stepping", func() {
		It("should track source lines", func() {
			Expect(emu.LoadFile(writeProgram("MOV BEN , 1", "JMP last", "MOV BEN , 2", "last: ADD BEN , 1"))).To(Succeed())

			var lines []int
			for {
				lines = append(lines, emu.LineNo())
				done, err := emu.Tick()
				Expect(err).NotTo(HaveOccurred())
				if done {
					break
				}
			}

			Expect(lines).To(Equal([]int{1, 2, 4, 0}))
			Expect(emu.Register[cpu.REG_BEN]).To(Equal(int32(2)))
		})

		It("should stop when the context is done", func() {
			Expect(emu.LoadFile(writeProgram("loop: JMP loop"))).To(Succeed())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			Expect(emu.Run(ctx)).To(MatchError(context.Canceled))
			Expect(emu.Faulted()).To(BeFalse())
		})
	})

	Context("Dump", func() {
		BeforeEach(func() {
			emu = emulator.NewEmulator(5, zap.NewNop())
			Expect(emu.LoadFile(writeProgram("JMP skip", "MOV AYB , 99", "skip: MOV BEN , 1"))).To(Succeed())
			Expect(emu.Run(context.Background())).To(Succeed())
		})

		It("should write plain text", func() {
			var out strings.Builder
			Expect(emu.Dump(&out, emulator.DUMP_PLAIN)).To(Succeed())
			Expect(out.String()).To(Equal("Memory:\n" +
				"[0] : JMP skip\n" +
				"[1] : MOV AYB , 99\n" +
				"[2] : skip: MOV BEN , 1\n" +
				"[3] : 0\n" +
				"[4] : 0\n"))
		})

		It("should write tables", func() {
			var out strings.Builder
			Expect(emu.Dump(&out, emulator.DUMP_TABLE)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Memory"))
			Expect(out.String()).To(ContainSubstring("Registers"))
			Expect(out.String()).To(ContainSubstring("MOV BEN , 1"))
			Expect(out.String()).To(ContainSubstring("skip"))
		})

		It("should write nothing", func() {
			var out strings.Builder
			Expect(emu.Dump(&out, emulator.DUMP_NONE)).To(Succeed())
			Expect(out.String()).To(BeEmpty())
		})

		It("should write nothing after a fault", func() {
			Expect(emu.LoadFile(writeProgram("DIV AYB , 0"))).To(Succeed())
			Expect(emu.Run(context.Background())).NotTo(Succeed())

			var out strings.Builder
			Expect(emu.Dump(&out, emulator.DUMP_TABLE)).To(MatchError(cpu.ErrDivideByZero))
			Expect(out.String()).To(BeEmpty())
		})
	})

	DescribeTable("ParseDumpStyle",
		func(name string, style emulator.DumpStyle, ok bool) {
			got, err := emulator.ParseDumpStyle(name)
			if !ok {
				Expect(err).To(MatchError(emulator.ErrDumpStyle))
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(style))
		},
		Entry("none", "none", emulator.DUMP_NONE, true),
		Entry("plain", "plain", emulator.DUMP_PLAIN, true),
		Entry("table", "table", emulator.DUMP_TABLE, true),
		Entry("unknown", "fancy", emulator.DUMP_NONE, false),
	)
})
