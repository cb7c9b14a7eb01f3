package material

func fp(v float64) *float64 { return &v }

// Seed is the built-in reference set. cmd/seed pushes it into Postgres; the
// in-memory repository and the tests use it directly. Values are typical
// room-temperature handbook figures, stored in SI.
var Seed = []Material{
	{
		Name:             "AISI 1045 Steel",
		Category:         "Metal",
		Density:          fp(7850),
		YoungsModulus:    fp(200e9),
		YieldStrength:    fp(530e6),
		TensileStrength:  fp(625e6),
		PoissonRatio:     fp(0.29),
		ShearModulus:     fp(80e9),
		ThermalExpansion: fp(11.5e-6),
		MeltingPointC:    fp(1430),
		MaxServiceTempC:  fp(450),
		ElongationPct:    fp(12),
	},
	{
		Name:             "AISI 304 Stainless",
		Category:         "Metal",
		Density:          fp(8000),
		YoungsModulus:    fp(193e9),
		YieldStrength:    fp(215e6),
		TensileStrength:  fp(505e6),
		PoissonRatio:     fp(0.29),
		ShearModulus:     fp(77e9),
		ThermalExpansion: fp(17.2e-6),
		MeltingPointC:    fp(1450),
		MaxServiceTempC:  fp(870),
		ElongationPct:    fp(70),
	},
	{
		Name:             "Aluminum 6061-T6",
		Category:         "Metal",
		Density:          fp(2700),
		YoungsModulus:    fp(68.9e9),
		YieldStrength:    fp(276e6),
		TensileStrength:  fp(310e6),
		PoissonRatio:     fp(0.33),
		ShearModulus:     fp(26e9),
		ThermalExpansion: fp(23.6e-6),
		MeltingPointC:    fp(652),
		MaxServiceTempC:  fp(170),
		ElongationPct:    fp(12),
	},
	{
		Name:             "Aluminum 7075-T6",
		Category:         "Metal",
		Density:          fp(2810),
		YoungsModulus:    fp(71.7e9),
		YieldStrength:    fp(503e6),
		TensileStrength:  fp(572e6),
		PoissonRatio:     fp(0.33),
		ShearModulus:     fp(26.9e9),
		ThermalExpansion: fp(23.4e-6),
		MeltingPointC:    fp(635),
		MaxServiceTempC:  fp(120),
		ElongationPct:    fp(11),
	},
	{
		Name:             "Ti-6Al-4V",
		Category:         "Metal",
		Density:          fp(4430),
		YoungsModulus:    fp(113.8e9),
		YieldStrength:    fp(880e6),
		TensileStrength:  fp(950e6),
		PoissonRatio:     fp(0.342),
		ShearModulus:     fp(44e9),
		ThermalExpansion: fp(8.6e-6),
		MeltingPointC:    fp(1660),
		MaxServiceTempC:  fp(350),
		ElongationPct:    fp(14),
	},
	{
		Name:             "Copper C110",
		Category:         "Metal",
		Density:          fp(8940),
		YoungsModulus:    fp(117e9),
		YieldStrength:    fp(69e6),
		TensileStrength:  fp(220e6),
		PoissonRatio:     fp(0.34),
		ThermalExpansion: fp(17e-6),
		MeltingPointC:    fp(1083),
		MaxServiceTempC:  fp(260),
		ElongationPct:    fp(45),
	},
	{
		Name:             "Brass C360",
		Category:         "Metal",
		Density:          fp(8500),
		YoungsModulus:    fp(97e9),
		YieldStrength:    fp(310e6),
		TensileStrength:  fp(400e6),
		PoissonRatio:     fp(0.31),
		ThermalExpansion: fp(20.5e-6),
		MeltingPointC:    fp(885),
		ElongationPct:    fp(23),
	},
	{
		// Brittle: no meaningful yield point, negligible elongation.
		Name:             "Gray Cast Iron",
		Category:         "Metal",
		Density:          fp(7200),
		YoungsModulus:    fp(110e9),
		TensileStrength:  fp(207e6),
		PoissonRatio:     fp(0.26),
		ThermalExpansion: fp(12e-6),
		MeltingPointC:    fp(1260),
		MaxServiceTempC:  fp(450),
	},
	{
		// Amorphous: softens instead of melting, so no melting point.
		Name:             "ABS",
		Category:         "Polymer",
		Density:          fp(1050),
		YoungsModulus:    fp(2.3e9),
		YieldStrength:    fp(42e6),
		TensileStrength:  fp(44e6),
		PoissonRatio:     fp(0.35),
		ThermalExpansion: fp(90e-6),
		MaxServiceTempC:  fp(80),
		ElongationPct:    fp(25),
	},
	{
		Name:             "Nylon 6/6",
		Category:         "Polymer",
		Density:          fp(1140),
		YoungsModulus:    fp(2.9e9),
		YieldStrength:    fp(82e6),
		TensileStrength:  fp(82.7e6),
		PoissonRatio:     fp(0.39),
		ThermalExpansion: fp(80e-6),
		MeltingPointC:    fp(262),
		MaxServiceTempC:  fp(105),
		ElongationPct:    fp(30),
	},
	{
		Name:             "PEEK",
		Category:         "Polymer",
		Density:          fp(1320),
		YoungsModulus:    fp(3.6e9),
		YieldStrength:    fp(97e6),
		TensileStrength:  fp(100e6),
		PoissonRatio:     fp(0.38),
		ThermalExpansion: fp(47e-6),
		MeltingPointC:    fp(343),
		MaxServiceTempC:  fp(250),
		ElongationPct:    fp(30),
	},
	{
		Name:             "Alumina 99.5%",
		Category:         "Ceramic",
		Density:          fp(3890),
		YoungsModulus:    fp(370e9),
		TensileStrength:  fp(260e6),
		PoissonRatio:     fp(0.22),
		ThermalExpansion: fp(8.1e-6),
		MeltingPointC:    fp(2054),
		MaxServiceTempC:  fp(1700),
	},
	{
		Name:             "Concrete (C30)",
		Category:         "Ceramic",
		Density:          fp(2400),
		YoungsModulus:    fp(30e9),
		TensileStrength:  fp(3e6),
		PoissonRatio:     fp(0.2),
		ThermalExpansion: fp(10e-6),
		MaxServiceTempC:  fp(300),
	},
	{
		// Quasi-isotropic layup; laminates fail without a yield plateau.
		Name:             "Carbon Fiber/Epoxy",
		Category:         "Composite",
		Density:          fp(1600),
		YoungsModulus:    fp(70e9),
		TensileStrength:  fp(600e6),
		PoissonRatio:     fp(0.3),
		ThermalExpansion: fp(2e-6),
		MaxServiceTempC:  fp(120),
	},
	{
		// Along the grain.
		Name:            "Red Oak",
		Category:        "Wood",
		Density:         fp(700),
		YoungsModulus:   fp(12.5e9),
		TensileStrength: fp(99e6),
		MaxServiceTempC: fp(100),
	},
}

// SeedByName returns a seed record by exact name.
func SeedByName(name string) (Material, bool) {
	for _, m := range Seed {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}
