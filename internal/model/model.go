package model

import "fmt"

// PlayKey identifies one play within one game.
type PlayKey struct {
	GameID int
	PlayID int
}

func (k PlayKey) String() string {
	return fmt.Sprintf("%d/%d", k.GameID, k.PlayID)
}

// FrameKey identifies one frame of one play.
type FrameKey struct {
	GameID  int
	PlayID  int
	FrameID int
}

// Canonical play directions in the tracking data. All core computations
// require frames normalized to DirectionRight.
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Tracking event labels the core cares about.
const (
	EventTackle       = "tackle"
	EventFirstContact = "first_contact"
	EventQBSlide      = "qb_slide"
)

// ---- Raw input rows, one per CSV table ----

// TrackingFrame is one player's state at one frame instant of one play.
// Positions are in yards from the field origin; increasing x is downfield
// for the offense once the play has been normalized to DirectionRight.
type TrackingFrame struct {
	GameID        int
	PlayID        int
	NFLID         int // 0 for the ball row
	FrameID       int // monotonically increasing per play, starts at 1
	DisplayName   string
	JerseyNumber  int // 0 for the ball row
	Team          string
	PlayDirection string
	X, Y          float64 // yards
	S             float64 // speed, yards/sec
	A             float64 // acceleration, yards/sec^2
	Dis           float64 // distance traveled since previous frame, yards
	O             float64 // orientation, degrees [0, 360)
	Dir           float64 // direction of motion, degrees [0, 360)
	Event         string  // "" when the frame carries no event label
}

// Key returns the play this frame belongs to.
func (f TrackingFrame) Key() PlayKey {
	return PlayKey{GameID: f.GameID, PlayID: f.PlayID}
}

// PlayMetadata is one row of plays.csv. Only BallCarrierID is consumed by
// the core; the descriptive fields ride along for reporting.
type PlayMetadata struct {
	GameID        int
	PlayID        int
	BallCarrierID int
	Description   string
	Quarter       int
	Down          int
	YardsToGo     int
}

func (p PlayMetadata) Key() PlayKey {
	return PlayKey{GameID: p.GameID, PlayID: p.PlayID}
}

// TackleAttribution is one row of tackles.csv, crediting a defender with a
// tackle (or assist) on a play.
type TackleAttribution struct {
	GameID int
	PlayID int
	NFLID  int
	Tackle int // 1 if this player is credited with the solo tackle
	Assist int
}

func (t TackleAttribution) Key() PlayKey {
	return PlayKey{GameID: t.GameID, PlayID: t.PlayID}
}

// Player is one row of players.csv.
type Player struct {
	NFLID       int
	DisplayName string
	Position    string
	Weight      float64 // lbs
}

// ---- Derived, play-scoped records ----

// GapSample pairs ball-carrier and tackler state at one frame of a play.
// Unsuffixed fields describe the ball carrier; the T suffix marks the
// tackler, matching the column convention of the source tables.
type GapSample struct {
	FrameID     int
	Event       string  // carried through from the carrier's frame
	Gap         float64 // Euclidean carrier-tackler distance, yards; never negative
	S           float64 // carrier speed magnitude, yards/sec
	SDownfield  float64 // carrier speed projected on the downfield axis
	Weight      float64 // carrier mass, lbs
	SDownfieldT float64
	WeightT     float64
	DisT        float64 // tackler distance traveled since previous frame
	XT, YT      float64 // tackler position
}

// TackleWindow brackets the physical engagement of a tackle: the inferred
// contact frame and the labeled tackle frame. ContactFrameID never exceeds
// TackleFrameID.
type TackleWindow struct {
	ContactFrameID int
	TackleFrameID  int
}

// Frames returns the engagement duration in frames.
func (w TackleWindow) Frames() int {
	return w.TackleFrameID - w.ContactFrameID
}

// TackleMetricsRecord is the per-play output of the pipeline.
type TackleMetricsRecord struct {
	GameID int
	PlayID int

	ContactFrameID int
	TackleFrameID  int
	Frames         int // engagement duration, TackleFrameID - ContactFrameID

	// Pursuit: distance the tackler actually traveled in the lead-up to
	// contact vs. the straight-line distance between its endpoints.
	DActual float64
	DIdeal  float64
	// DEff = DIdeal / DActual. Valid only when DEffOK is true; a tackler
	// with no lead-up travel has no meaningful efficiency.
	DEff   float64
	DEffOK bool

	GapTackle float64 // carrier-tackler gap at the tackle frame (wrap-up tightness)

	WCarrier float64 // lbs
	WTackler float64 // lbs

	// Carrier downfield speed the frame before the tackle, relative to the
	// neutral inelastic-collision prediction. Positive means the defense
	// underperformed the neutral model.
	SDownfieldDelta float64

	SContact float64 // carrier speed magnitude at the contact frame
}

func (r TackleMetricsRecord) Key() PlayKey {
	return PlayKey{GameID: r.GameID, PlayID: r.PlayID}
}

// PursuitEfficiency returns DEff and whether it is defined.
func (r TackleMetricsRecord) PursuitEfficiency() (float64, bool) {
	return r.DEff, r.DEffOK
}

// RunSummary is a lightweight record of one analyze invocation.
type RunSummary struct {
	ID            int
	RunDate       string
	Source        string
	PlaysAnalyzed int
	PlaysFailed   int
	PlaysSkipped  int
}
