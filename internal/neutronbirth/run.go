package neutronbirth

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lukaszgryglicki/neutronbirth/internal/plasma"
	"go.uber.org/zap"
)

// Run loads the config at cfgPath and runs it.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	return RunConfig(cfg)
}

// RunConfig samples the plasma, builds the scene, exports it and, when
// cfg.Show is set, opens the viewer. Steps run strictly in that order.
func RunConfig(cfg *Config) error {
	log := Log.With(zap.String("run_id", uuid.NewString()))
	AssetsHost = cfg.AssetsHost

	src, err := plasma.New(cfg.Plasma)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sampler := NewSampler(src, rand.New(rand.NewSource(seed)))
	log.Info("Sampling plasma",
		zap.Int("plasma_id", cfg.Plasma.PlasmaID),
		zap.Int("samples", cfg.Samples),
		zap.Int64("seed", seed),
	)

	start := time.Now()
	set, err := sampler.Collect(cfg.Samples)
	if err != nil {
		log.Error("Sampling failed", zap.Error(err))
		return err
	}
	DebugLog("Samples: %d, time: %s", len(set), time.Since(start))

	labels := BuildLabels(set.Energies(), cfg.EnergyUnit)
	scene, err := BuildScene(set, labels, cfg.Title, cfg.MarkerSize)
	if err != nil {
		return err
	}

	written, err := Export(scene, cfg.Outputs)
	if err != nil {
		log.Error("Export failed", zap.Error(err))
		return err
	}
	log.Info("Exported scene", zap.Strings("paths", written))

	if !cfg.Show {
		return nil
	}
	return Display(scene)
}
