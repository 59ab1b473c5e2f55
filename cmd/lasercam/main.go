// Command lasercam turns DXF outline drawings into a laser cutting
// G-code program. Each input file becomes a model, placed on a sheet
// with the requested transform and quantity, and the whole sheet is
// written out as one program.
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Clinery1/laser-cam/pkg/geometry"
	"github.com/Clinery1/laser-cam/pkg/laser"
	"github.com/Clinery1/laser-cam/pkg/model"
	"github.com/Clinery1/laser-cam/pkg/sheet"
)

func main() {
	out := pflag.StringP("out", "o", "", "output file (default stdout)")
	conditionsPath := pflag.StringP("conditions", "c", "", "laser conditions JSON file")
	conditionName := pflag.String("condition", "", "condition name to cut with (default: the store's default)")
	qty := pflag.IntP("qty", "n", 1, "copies of each model to place")
	scale := pflag.Float64("scale", 1, "uniform scale applied to each model")
	rotation := pflag.Float64("rotation", 0, "rotation in degrees, counter-clockwise")
	flip := pflag.Bool("flip", false, "mirror each model over the X axis")
	offsetX := pflag.Float64("offset-x", 0, "X offset of the first copy")
	offsetY := pflag.Float64("offset-y", 0, "Y offset of the first copy")
	configPath := pflag.String("config", "", "machine config file")
	pflag.Parse()

	files := pflag.Args()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] dxf-file...\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(2)
	}

	cfg := loadConfig(*configPath)
	if *conditionsPath == "" {
		*conditionsPath = cfg.GetString("conditions")
	}

	conditions := loadConditions(*conditionsPath)
	condID := resolveCondition(conditions, *conditionName)

	size := geometry.Vector2{
		X: cfg.GetFloat64("sheet.width"),
		Y: cfg.GetFloat64("sheet.height"),
	}
	s := sheet.New("sheet", size)

	models := model.NewStore()
	for _, file := range files {
		m, err := model.Load(file)
		if err != nil {
			log.Fatalf("load %s: %s", file, err)
		}
		if n := m.SkippedEntities(); n > 0 {
			log.Printf("%s: skipped %d non-line entities", file, n)
		}
		if m.Shape().Empty() {
			log.Printf("%s: no closed or open paths found", file)
		}

		h := models.Add(m)
		state := sheet.EntityState{
			Transform: geometry.EntityTransform{
				Transform: geometry.Transform{
					Translation: geometry.Point{X: *offsetX, Y: *offsetY},
					Rotation:    *rotation * math.Pi / 180,
					Scale:       *scale,
				},
				Flip: *flip,
			},
			Condition: condID,
		}
		s.Place(h, state, *qty)
	}

	program := s.Gcode(conditions)

	if *out == "" {
		fmt.Print(program)
		return
	}
	if err := os.WriteFile(*out, []byte(program), 0o644); err != nil {
		log.Fatalf("write %s: %s", *out, err)
	}
}

// loadConfig reads the optional machine config (sheet size, conditions
// path). Flags still win where both are given.
func loadConfig(path string) *viper.Viper {
	cfg := viper.New()
	cfg.SetDefault("sheet.width", 300.0)
	cfg.SetDefault("sheet.height", 300.0)

	if path != "" {
		cfg.SetConfigFile(path)
		if err := cfg.ReadInConfig(); err != nil {
			log.Fatalf("read config: %s", err)
		}
		return cfg
	}

	cfg.SetConfigName("lasercam")
	cfg.AddConfigPath(".")
	if err := cfg.ReadInConfig(); err != nil {
		// The default config file is optional.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("read config: %s", err)
		}
	}
	return cfg
}

func loadConditions(path string) *laser.Store {
	if path == "" {
		return laser.NewStore()
	}
	conditions, err := laser.Load(path)
	if err != nil {
		log.Fatalf("load conditions: %s", err)
	}
	return conditions
}

func resolveCondition(conditions *laser.Store, name string) laser.ConditionID {
	if name == "" {
		return conditions.Default()
	}
	c, ok := conditions.FindByName(name)
	if !ok {
		log.Fatalf("no condition named %q", name)
	}
	return c.ID
}
