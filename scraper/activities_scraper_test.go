package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activitiesPage = `<html><body>
<a href="/activity/salt-sauna">
<div class="attactev-body">
<h3>Salt Sauna</h3>
<span>THE PALM</span>
<span>Sauna Panoramica</span>
</div>
</a>
<div class="attactev-body">
<h3>Aqua Gym</h3>
<a href="https://therme.ro/activity/aqua-gym"><span>GALAXY</span></a>
<span>Piscina Interioara</span>
</div>
<div class="attactev-body">
<h3>Quiet Lounge</h3>
<span>Relaxation area</span>
</div>
<div class="attactev-body"><span>No heading here</span></div>
</body></html>`

func TestParseActivities(t *testing.T) {
	doc := docFromString(t, activitiesPage)
	activities := ParseActivities(doc, "https://therme.ro/activities")

	require.Len(t, activities, 3)

	assert.Equal(t, Activity{
		Name:     "Salt Sauna",
		Location: "Sauna Panoramica",
		Tier:     TierPalm,
		Link:     "https://therme.ro/activity/salt-sauna",
	}, activities[0])

	assert.Equal(t, Activity{
		Name:     "Aqua Gym",
		Location: "Piscina Interioara",
		Tier:     TierGalaxy,
		Link:     "https://therme.ro/activity/aqua-gym",
	}, activities[1])

	// No tier label: the whole remaining text is the location.
	assert.Equal(t, Activity{
		Name:     "Quiet Lounge",
		Location: "Relaxation area",
	}, activities[2])
}
