package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder/go-tackle-metrics/internal/model"
)

const trackingCSV = `gameId,playId,nflId,displayName,frameId,club,playDirection,x,y,s,a,dis,o,dir,event,jerseyNumber
2022090800,56,35472,Rodger Saffold,1,BUF,left,88.37,27.27,1.62,1.15,0.16,232.57,239.55,NA,76
2022090800,56,NA,football,1,football,left,88.24,24.55,2.56,1.5,0.26,NA,NA,pass_arrived,NA
2022090800,56,42816,Jordan Poyer,2,BUF,left,87.42,30.35,3.86,1.062,0.39,-16.73,200.84,tackle,21
`

func TestParseTracking(t *testing.T) {
	frames, err := ParseTracking(strings.NewReader(trackingCSV))
	require.NoError(t, err)
	require.Len(t, frames, 3)

	f := frames[0]
	assert.Equal(t, 2022090800, f.GameID)
	assert.Equal(t, 56, f.PlayID)
	assert.Equal(t, 35472, f.NFLID)
	assert.Equal(t, 1, f.FrameID)
	assert.Equal(t, "BUF", f.Team)
	assert.Equal(t, model.DirectionLeft, f.PlayDirection)
	assert.InDelta(t, 88.37, f.X, 1e-9)
	assert.InDelta(t, 239.55, f.Dir, 1e-9)
	assert.Equal(t, 76, f.JerseyNumber)
	assert.Empty(t, f.Event, "NA event maps to empty string")

	ball := frames[1]
	assert.Zero(t, ball.NFLID, "ball row has no nflId")
	assert.Zero(t, ball.JerseyNumber)
	assert.Zero(t, ball.O, "NA orientation maps to zero")
	assert.Equal(t, "pass_arrived", ball.Event)

	assert.Equal(t, model.EventTackle, frames[2].Event)
}

func TestParseTracking_MissingColumn(t *testing.T) {
	_, err := ParseTracking(strings.NewReader("gameId,playId\n1,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestParseTracking_BadCell(t *testing.T) {
	csv := "gameId,playId,nflId,frameId,playDirection,x,y,s,a,dis,o,dir,event\n" +
		"oops,56,1,1,right,1,1,1,1,1,1,1,tackle\n"
	_, err := ParseTracking(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "gameId"`)
}

func TestParsePlays(t *testing.T) {
	csv := `gameId,playId,ballCarrierId,ballCarrierDisplayName,playDescription,quarter,down,yardsToGo
2022090800,56,44830,Devin Singletary,(14:15) D.Singletary right guard to BUF 27 for 2 yards.,1,2,8
`
	plays, err := ParsePlays(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, plays, 1)
	assert.Equal(t, 44830, plays[0].BallCarrierID)
	assert.Equal(t, 2, plays[0].Down)
	assert.Contains(t, plays[0].Description, "right guard")
}

func TestParseTackles(t *testing.T) {
	csv := `gameId,playId,nflId,tackle,assist,forcedFumble,pff_missedTackle
2022090800,56,42816,1,0,0,0
2022090800,56,47939,0,1,0,0
`
	tackles, err := ParseTackles(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, tackles, 2)
	assert.Equal(t, 1, tackles[0].Tackle)
	assert.Equal(t, 1, tackles[1].Assist)
}

func TestParsePlayers(t *testing.T) {
	csv := `nflId,height,weight,birthDate,collegeName,position,displayName
25511,6-4,225,1977-08-03,Michigan,QB,Tom Brady
`
	players, err := ParsePlayers(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, 25511, players[0].NFLID)
	assert.InDelta(t, 225.0, players[0].Weight, 1e-9)
	assert.Equal(t, "QB", players[0].Position)
}

func TestWeightLookup(t *testing.T) {
	d := &Dataset{Players: []model.Player{
		{NFLID: 1, Weight: 210},
		{NFLID: 2, Weight: 245},
	}}
	weights := d.WeightLookup()
	assert.InDelta(t, 210.0, weights[1], 1e-9)
	assert.InDelta(t, 245.0, weights[2], 1e-9)
	_, ok := weights[3]
	assert.False(t, ok)
}
