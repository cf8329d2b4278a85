package plan

import "github.com/poiesic/talentbridge/core"

// weightedLine is one slot of a budget template. Slice order is the
// presentation order of the resulting breakdown.
type weightedLine struct {
	Label  string
	Weight float64
}

var budgetTemplates = map[string][]weightedLine{
	"wedding": {
		{"💐 Venue & Decor", 0.30},
		{"🍽️ Catering & Drinks", 0.25},
		{"🎵 Entertainment", 0.20},
		{"📸 Photography & Video", 0.10},
		{"💐 Flowers & Styling", 0.07},
		{"💌 Invitations & Misc", 0.05},
		{"🛡️ Contingency Buffer", 0.03},
	},
	"corporate": {
		{"🏛️ Venue & AV Setup", 0.35},
		{"🍽️ Catering", 0.25},
		{"🎵 Entertainment", 0.15},
		{"📸 Photography/Video", 0.10},
		{"🎨 Branding & Signage", 0.08},
		{"🚚 Logistics & Misc", 0.07},
	},
	"birthday": {
		{"🏛️ Venue", 0.25},
		{"🍕 Food & Drinks", 0.30},
		{"🎵 Entertainment", 0.20},
		{"📸 Photography", 0.08},
		{"🎂 Cake & Desserts", 0.10},
		{"🎈 Decorations", 0.07},
	},
	"festival": {
		{"🎤 Stage & Sound", 0.30},
		{"🎵 Artists/Performers", 0.30},
		{"🚨 Security & Staffing", 0.15},
		{"📣 Marketing", 0.10},
		{"🍔 Food Vendors", 0.10},
		{"🚚 Logistics", 0.05},
	},
	"party": {
		{"🏛️ Venue", 0.25},
		{"🍕 Food & Drinks", 0.35},
		{"🎵 Entertainment", 0.20},
		{"📸 Photography", 0.08},
		{"🎈 Decorations", 0.12},
	},
	"gala": {
		{"🏛️ Venue & Ambiance", 0.30},
		{"🍽️ Catering (Fine Dining)", 0.28},
		{"🎵 Entertainment", 0.18},
		{"📸 Photography/Video", 0.10},
		{"💐 Flowers & Styling", 0.08},
		{"💌 Invitations & Misc", 0.06},
	},
	"concert": {
		{"🎤 Artist Booking", 0.40},
		{"🏛️ Venue & Stage", 0.25},
		{"🔊 Sound & Lighting", 0.15},
		{"📣 Marketing & Tickets", 0.10},
		{"🚨 Security & Staff", 0.07},
		{"🚚 Logistics", 0.03},
	},
	"default": {
		{"🏛️ Venue", 0.30},
		{"🍽️ Catering", 0.25},
		{"🎵 Entertainment", 0.20},
		{"📸 Photography", 0.10},
		{"🎈 Decorations", 0.08},
		{"🚚 Miscellaneous", 0.07},
	},
}

var eventTimelines = map[string][]core.TimelineStep{
	"wedding": {
		{Phase: "12–18 Months Before", Action: "Book venue & set budget. Begin wedding planning."},
		{Phase: "9–12 Months Before", Action: "Book entertainment (singer, DJ, band) & photographer."},
		{Phase: "6–9 Months Before", Action: "Finalize catering, florals, send save-the-dates."},
		{Phase: "3–6 Months Before", Action: "Book hair/makeup, confirm all vendors."},
		{Phase: "1–2 Months Before", Action: "Final fittings, rehearsal dinner, finalize seating."},
		{Phase: "1 Week Before", Action: "Confirm all bookings, prepare payments, final run-through."},
		{Phase: "Day Of 💍", Action: "Arrive early, coordinate vendors — enjoy your day!"},
	},
	"corporate": {
		{Phase: "3–6 Months Before", Action: "Define objectives, set budget, secure venue."},
		{Phase: "2–3 Months Before", Action: "Book speakers/entertainment, plan catering, send invites."},
		{Phase: "6–8 Weeks Before", Action: "Confirm AV setup, branding materials, agenda."},
		{Phase: "2–4 Weeks Before", Action: "Send reminders, confirm headcount, brief all vendors."},
		{Phase: "1 Week Before", Action: "Run tech checks, prepare materials, confirm logistics."},
		{Phase: "Day Of 🏢", Action: "Arrive 2h early, setup registration, welcome attendees."},
	},
	"birthday": {
		{Phase: "6–8 Weeks Before", Action: "Choose theme, book venue, estimate guest count."},
		{Phase: "4–6 Weeks Before", Action: "Book entertainment, send invitations, plan menu."},
		{Phase: "2–4 Weeks Before", Action: "Order cake, confirm vendors, plan decorations."},
		{Phase: "1 Week Before", Action: "Get RSVPs, confirm final numbers, prepare playlist."},
		{Phase: "Day Of 🎂", Action: "Set up early, welcome guests — have an amazing time!"},
	},
	"festival": {
		{Phase: "6–12 Months Before", Action: "Secure permits, book venue, finalize lineup budget."},
		{Phase: "4–6 Months Before", Action: "Book headlining artists, launch ticket sales."},
		{Phase: "2–4 Months Before", Action: "Book supporting acts, confirm food vendors, marketing."},
		{Phase: "4–8 Weeks Before", Action: "Finalize stage plan, security briefing, volunteer training."},
		{Phase: "1–2 Weeks Before", Action: "Load-in schedule, final checks, media accreditation."},
		{Phase: "Day Of 🎪", Action: "Gates open — enjoy the show!"},
	},
	"party": {
		{Phase: "4–6 Weeks Before", Action: "Book venue and entertainment."},
		{Phase: "2–4 Weeks Before", Action: "Send invites, finalize catering and decorations."},
		{Phase: "1 Week Before", Action: "Confirm RSVPs and vendor headcounts."},
		{Phase: "Day Of 🥂", Action: "Set up early, welcome guests — party on!"},
	},
	"gala": {
		{Phase: "4–6 Months Before", Action: "Book venue, set gala theme, form planning committee."},
		{Phase: "2–4 Months Before", Action: "Book entertainment, finalize catering, send invitations."},
		{Phase: "4–8 Weeks Before", Action: "Confirm all vendors, plan program & speeches."},
		{Phase: "1–2 Weeks Before", Action: "Final RSVP count, seating plan, briefing vendors."},
		{Phase: "Day Of ✨", Action: "Arrive early for setup — make it a night to remember!"},
	},
	"default": {
		{Phase: "6–8 Weeks Before", Action: "Book venue and set overall budget."},
		{Phase: "4–6 Weeks Before", Action: "Book entertainment and catering, send invites."},
		{Phase: "2–4 Weeks Before", Action: "Confirm vendors, finalize guest list."},
		{Phase: "1 Week Before", Action: "Confirm all bookings and logistics."},
		{Phase: "Day Of ✨", Action: "Arrive early and enjoy!"},
	},
}

var preferredCategories = map[string][]string{
	"wedding":   {"Singer", "Musician", "Photographer", "DJ", "Dancer", "Painter"},
	"corporate": {"Performer", "DJ", "Musician", "Photographer", "Singer"},
	"birthday":  {"DJ", "Performer", "Musician", "Photographer"},
	"festival":  {"Singer", "DJ", "Dancer", "Musician", "Performer"},
	"party":     {"DJ", "Musician", "Performer", "Photographer"},
	"gala":      {"Singer", "Musician", "Photographer", "Dancer", "Painter"},
	"concert":   {"Singer", "DJ", "Musician", "Dancer"},
	"default":   {"Singer", "DJ", "Musician", "Photographer", "Performer"},
}

var proTips = map[string][]string{
	"wedding": {
		"📅 Book vendors at least 12 months ahead for peak wedding season.",
		"💰 Keep 5–10% of budget as emergency buffer — always.",
		"👤 A day-of coordinator saves stress and ensures everything runs on time.",
	},
	"corporate": {
		"🎯 Define your KPIs before booking entertainment — align with event goals.",
		"📹 Record key sessions for post-event ROI content marketing.",
		"🎮 Interactive entertainment (magicians, live painters) boosts engagement 40%.",
	},
	"birthday": {
		"🎵 Book DJ or entertainer at least 4–6 weeks ahead.",
		"🎁 Surprise elements (flash mob, live singer reveal) create lasting memories.",
		"🍕 Catering quality = ~30% of overall guest experience.",
	},
	"festival": {
		"📋 Secure all permits before any public announcements.",
		"☔ Always have a rain contingency plan — outdoor events depend on it.",
		"🏥 On-site medical team is non-negotiable for large outdoor festivals.",
	},
	"party": {
		"🎶 Great music = great party. Invest in a good DJ or live musician.",
		"🥂 Over-cater on drinks by 15% — you'll thank yourself later.",
		"📸 Even a casual photographer captures priceless memories.",
	},
	"gala": {
		"✨ Invest in lighting — it transforms any venue for a fraction of cost.",
		"🎤 A professional emcee keeps the program flowing smoothly.",
		"💌 Physical invitations for a gala elevate the guest experience.",
	},
	"default": {
		"📋 Always have a backup plan for key vendors.",
		"✅ Confirm all bookings 1 week before the event.",
		"💰 Keep a contingency budget of at least 5–10%.",
	},
}

func templateFor(eventType string) []weightedLine {
	if t, ok := budgetTemplates[eventType]; ok {
		return t
	}
	return budgetTemplates["default"]
}

func timelineFor(eventType string) []core.TimelineStep {
	if t, ok := eventTimelines[eventType]; ok {
		return t
	}
	return eventTimelines["default"]
}

func tipsFor(eventType string) []string {
	if t, ok := proTips[eventType]; ok {
		return t
	}
	return proTips["default"]
}

func categoriesFor(eventType string) []string {
	if c, ok := preferredCategories[eventType]; ok {
		return c
	}
	return preferredCategories["default"]
}
