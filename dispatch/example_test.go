package dispatch_test

import (
	"fmt"
	"os"
	"time"

	"github.com/ardnew/clog/color"
	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/dispatch"
)

func ExamplePrinter() {
	at := dispatch.WithTime(time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC))
	prn := dispatch.MakePrinter(os.Stdout, config.Default(),
		color.MakePalette(os.Stdout, color.WithMode(color.ModeNever)))

	_ = prn.Header("GENERAL", "DISPLAY", at, dispatch.WithWidth(10))
	_ = prn.Warn("NETWORK", "link down", at)
	_ = prn.Divider("GENERAL", "DISPLAY", dispatch.WithoutTime(), dispatch.WithWidth(10))

	// Output:
	// [2024.2.5-7:8:9] GENERAL (DISPLAY): ==========
	// [2024.2.5-7:8:9] NETWORK (WARNING): link down
	// [] GENERAL (DISPLAY): ----------
}

func ExampleGenerator() {
	gen := dispatch.MakeGenerator(config.Default(), color.Palette{})

	line, err := gen.Error("STORAGE", "disk full", dispatch.WithoutTime())
	if err != nil {
		panic(err)
	}

	fmt.Println(line)

	// Output:
	// [] STORAGE (ERROR): disk full
}
