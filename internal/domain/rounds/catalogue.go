package rounds

// Score alphabets. Imperial rounds score on the five-zone target; metric
// rounds on the ten-zone target with an inner-ring X; indoor rounds drop
// the X by convention; Worcester has its own five-zone face where X marks
// the centre spot.
var (
	imperialAlphabet  = []string{"9", "7", "5", "3", "1", "M"}
	metricAlphabet    = []string{"X", "10", "9", "8", "7", "6", "5", "4", "3", "2", "1", "M"}
	indoorAlphabet    = []string{"10", "9", "8", "7", "6", "5", "4", "3", "2", "1", "M"}
	worcesterAlphabet = []string{"X", "5", "4", "3", "2", "1", "M"}
)

func imperial(name string, dozens []float64, distances []int) Config {
	return Config{
		Name:      name,
		Imperial:  true,
		Outdoor:   true,
		EndSize:   DefaultEndSize,
		Dozens:    dozens,
		Distances: distances,
		Unit:      Yards,
		Alphabet:  imperialAlphabet,
	}
}

func metric(name string, dozens []float64, distances []int) Config {
	return Config{
		Name:      name,
		Imperial:  false,
		Outdoor:   true,
		EndSize:   DefaultEndSize,
		Dozens:    dozens,
		Distances: distances,
		Unit:      Metres,
		Alphabet:  metricAlphabet,
	}
}

func indoor(name string, dozens []float64, distances []int, unit Unit) Config {
	return Config{
		Name:      name,
		Imperial:  false,
		Outdoor:   false,
		EndSize:   3,
		Dozens:    dozens,
		Distances: distances,
		Unit:      unit,
		Alphabet:  indoorAlphabet,
	}
}

// catalogue is the built-in round reference data. Distances are listed
// longest first, the order they are shot in.
var catalogue = []Config{
	// Imperial outdoor
	imperial("York", []float64{6, 4, 2}, []int{100, 80, 60}),
	imperial("Hereford", []float64{6, 4, 2}, []int{80, 60, 50}),
	imperial("Bristol I", []float64{6, 4, 2}, []int{80, 60, 50}),
	imperial("Bristol II", []float64{6, 4, 2}, []int{60, 50, 40}),
	imperial("Bristol III", []float64{6, 4, 2}, []int{50, 40, 30}),
	imperial("Bristol IV", []float64{6, 4, 2}, []int{40, 30, 20}),
	imperial("Bristol V", []float64{6, 4, 2}, []int{30, 20, 10}),
	imperial("St George", []float64{3, 3, 3}, []int{100, 80, 60}),
	imperial("Albion", []float64{3, 3, 3}, []int{80, 60, 50}),
	imperial("Windsor", []float64{3, 3, 3}, []int{60, 50, 40}),
	imperial("Short Windsor", []float64{3, 3, 3}, []int{50, 40, 30}),
	imperial("Junior Windsor", []float64{3, 3, 3}, []int{40, 30, 20}),
	imperial("National", []float64{4, 2}, []int{60, 50}),
	imperial("Short National", []float64{4, 2}, []int{50, 40}),
	imperial("Western", []float64{4, 4}, []int{60, 50}),
	imperial("Short Western", []float64{4, 4}, []int{50, 40}),
	imperial("Warwick", []float64{2, 2}, []int{60, 50}),
	imperial("Short Warwick", []float64{2, 2}, []int{50, 40}),
	imperial("Gert Lush", []float64{3, 3}, []int{40, 30}),

	// Metric outdoor
	metric("WA 1440", []float64{3, 3, 3, 3}, []int{90, 70, 50, 30}),
	metric("WA 720 70m", []float64{6}, []int{70}),
	metric("WA 720 60m", []float64{6}, []int{60}),
	metric("WA 720 50m", []float64{6}, []int{50}),
	metric("WA 70m", []float64{6}, []int{70}),
	metric("Metric I", []float64{3, 3, 3, 3}, []int{70, 60, 50, 30}),
	metric("Metric II", []float64{3, 3, 3, 3}, []int{60, 50, 40, 30}),
	metric("Metric III", []float64{3, 3, 3, 3}, []int{50, 40, 30, 20}),
	metric("Metric IV", []float64{3, 3, 3, 3}, []int{40, 30, 20, 10}),
	metric("Metric V", []float64{3, 3, 3, 3}, []int{30, 20, 15, 10}),
	metric("Frostbite", []float64{3}, []int{30}),

	// Indoor
	indoor("Portsmouth", []float64{5}, []int{20}, Yards),
	indoor("WA 18", []float64{5}, []int{18}, Metres),
	indoor("Bray I", []float64{2.5}, []int{20}, Yards),
	indoor("Vegas", []float64{5}, []int{18}, Metres),
	{
		Name:      "Worcester",
		Imperial:  false,
		Outdoor:   false,
		EndSize:   5,
		Dozens:    []float64{5},
		Distances: []int{20},
		Unit:      Yards,
		Alphabet:  worcesterAlphabet,
	},

	// Free-form practice
	{
		Name:      "Practice",
		Imperial:  false,
		Outdoor:   true,
		EndSize:   DefaultEndSize,
		Dozens:    []float64{PracticeDozens},
		Distances: []int{0},
		Unit:      Metres,
		Alphabet:  metricAlphabet,
	},
}
