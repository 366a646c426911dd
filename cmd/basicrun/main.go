// basicrun loads a program image onto a memory.Bus wired with a console
// Bridge and either runs it on a cpu.Chip or lists it as tokenized BASIC.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/retrocore/m6502basic/basiclist"
	"github.com/retrocore/m6502basic/console"
	"github.com/retrocore/m6502basic/cpu"
	"github.com/retrocore/m6502basic/internal/hostrun"
	"github.com/retrocore/m6502basic/memory"
	"github.com/retrocore/m6502basic/rom"
)

func main() {
	app := &cli.App{
		Name:  "basicrun",
		Usage: "load and run or list a 6502 BASIC program image",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "ram-size", Value: 1 << 16, Usage: "RAM size in bytes, 1-65536"},
			&cli.StringFlag{Name: "load", Required: true, Usage: "path to a PRG-style program image"},
			&cli.IntFlag{Name: "entry", Value: -1, Usage: "start execution at this PC instead of the image's load address"},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "execute the loaded program until it halts on an illegal opcode",
				Action: runAction,
			},
			{
				Name:   "list",
				Usage:  "list the loaded program as tokenized BASIC",
				Flags:  []cli.Flag{&cli.IntFlag{Name: "basic", Value: 0x0801, Usage: "address of the first BASIC line"}},
				Action: listAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadedBus(c *cli.Context) (*memory.Bus, uint16, error) {
	bus, err := memory.NewBus(c.Int("ram-size"))
	if err != nil {
		return nil, 0, err
	}
	image, err := os.ReadFile(c.String("load"))
	if err != nil {
		return nil, 0, err
	}
	addr, err := rom.LoadPRG(bus, image)
	if err != nil {
		return nil, 0, err
	}
	return bus, addr, nil
}

func runAction(c *cli.Context) error {
	bus, addr, err := loadedBus(c)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	bridge := console.NewBridge(console.DefaultAddrs(), out, nil)
	bus.Attach(bridge)

	entry := c.Int("entry")
	if entry < 0 {
		entry = int(addr)
	}
	bus.Write(0xFFFC, uint8(entry))
	bus.Write(0xFFFD, uint8(entry>>8))

	chip, err := cpu.New(bus)
	if err != nil {
		return err
	}
	_, err = hostrun.Run(c.Context, chip, func(cpu.State) bool { return true })
	if _, ok := err.(cpu.IllegalOpcodeError); ok {
		return nil
	}
	return err
}

func listAction(c *cli.Context) error {
	bus, _, err := loadedBus(c)
	if err != nil {
		return err
	}
	lines, err := basiclist.Program(uint16(c.Int("basic")), bus, 10000)
	for _, l := range lines {
		fmt.Println(l)
	}
	return err
}
