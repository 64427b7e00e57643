package normalize

import "github.com/calder/go-tackle-metrics/internal/model"

// KnownBadPlay is a play excluded from analysis after manual film review.
type KnownBadPlay struct {
	Key    model.PlayKey
	Reason string
}

// KnownBadPlays is the curated exclusion list for the 2022 tracking data.
var KnownBadPlays = []KnownBadPlay{
	{model.PlayKey{GameID: 2022091102, PlayID: 4102}, "play is cut off (not completed)"},
	{model.PlayKey{GameID: 2022110609, PlayID: 4313}, "lateral, cut off (tackle not captured)"},
	{model.PlayKey{GameID: 2022102000, PlayID: 2710}, "bad data"},
	{model.PlayKey{GameID: 2022110608, PlayID: 2679}, "bad data"},
	{model.PlayKey{GameID: 2022100600, PlayID: 2633}, "bad data"},
	{model.PlayKey{GameID: 2022091107, PlayID: 2530}, "credited tackler does not appear to make the tackle"},
	{model.PlayKey{GameID: 2022100905, PlayID: 1254}, "misidentified tackler"},
	{model.PlayKey{GameID: 2022101600, PlayID: 376}, "misidentified tackler"},
	{model.PlayKey{GameID: 2022100213, PlayID: 1806}, "credited tackler does not appear to make the tackle"},
	{model.PlayKey{GameID: 2022092512, PlayID: 1299}, "credited tackler does not appear to make the tackle"},
}

// KnownBadPlayKeys returns just the keys, for use with RemovePlays.
func KnownBadPlayKeys() []model.PlayKey {
	keys := make([]model.PlayKey, len(KnownBadPlays))
	for i, p := range KnownBadPlays {
		keys[i] = p.Key
	}
	return keys
}
