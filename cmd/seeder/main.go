package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/eventmatch"
	"github.com/poiesic/eventmatch/core"
)

var sampleEvents = []*core.Event{
	{
		Name:         "Wellness Founders Dinner",
		Description:  "An intimate dinner connecting wellness founders with angel investors over a plant-based menu.",
		Location:     "SoHo, New York",
		HostedBy:     "Founder Table",
		Price:        "Free",
		DateTime:     "Thu, Oct 8, 7 PM",
		UsageTags:    []string{"find-angels", "networking"},
		IndustryTags: []string{"wellness"},
		EventTags:    []string{"dinner", "intimate"},
		WomenFocused: true,
	},
	{
		Name:         "NYC Fintech Demo Day",
		Description:  "Twelve early-stage fintech startups pitch to a room of seed and Series A investors.",
		Location:     "Flatiron, New York",
		HostedBy:     "Fintech Collective",
		Price:        "$25",
		DateTime:     "Tue, Oct 13, 6 PM",
		UsageTags:    []string{"find-investors", "networking"},
		IndustryTags: []string{"fintech"},
		EventTags:    []string{"demo-day", "pitch"},
	},
	{
		Name:         "AI Builders Breakfast",
		Description:  "Morning coffee and croissants with engineers and founders building applied AI products.",
		Location:     "Williamsburg, Brooklyn",
		HostedBy:     "Builders Club",
		Price:        "Free",
		DateTime:     "Wed, Oct 14, 8:30 AM",
		UsageTags:    []string{"networking", "find-cofounder"},
		IndustryTags: []string{"ai"},
		EventTags:    []string{"breakfast", "casual"},
	},
	{
		Name:         "Women in Web3 Mixer",
		Description:  "An evening mixer for women founders and operators across crypto and web3.",
		Location:     "Lower East Side, New York",
		HostedBy:     "W3 Collective",
		Price:        "Free",
		DateTime:     "Fri, Oct 16, 7 PM",
		UsageTags:    []string{"networking"},
		IndustryTags: []string{"web3"},
		EventTags:    []string{"mixer", "happy-hour"},
		WomenFocused: true,
	},
	{
		Name:         "Healthtech Hiring Night",
		Description:  "Meet engineering and product candidates from top healthtech companies. Bring your open roles.",
		Location:     "Chelsea, New York",
		HostedBy:     "Health Forward",
		Price:        "$10",
		DateTime:     "Mon, Oct 19, 6:30 PM",
		UsageTags:    []string{"find-talent", "networking"},
		IndustryTags: []string{"healthtech"},
		EventTags:    []string{"recruiting"},
	},
	{
		Name:         "Founder Run Club",
		Description:  "A 5k morning run along the Hudson followed by coffee. All paces welcome.",
		Location:     "Hudson River Park, New York",
		HostedBy:     "Run & Build",
		Price:        "Free",
		DateTime:     "Sat, Oct 17, 7 AM",
		UsageTags:    []string{"networking"},
		IndustryTags: []string{},
		EventTags:    []string{"run-club", "morning"},
	},
	{
		Name:         "Climate Tech Investor Roundtable",
		Description:  "A closed-door roundtable pairing climate founders with funds writing first checks.",
		Location:     "Midtown, New York",
		HostedBy:     "Green Capital",
		Price:        "Invite only",
		DateTime:     "Thu, Oct 22, 5 PM",
		UsageTags:    []string{"find-investors"},
		IndustryTags: []string{"climate-tech"},
		EventTags:    []string{"roundtable"},
		InviteOnly:   true,
	},
}

var (
	dbPath  = flag.String("db", "./events_db", "path to the database directory")
	csvPath = flag.String("src", "", "optional CSV file to seed from instead of the samples")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	engine, err := eventmatch.NewEngine(*dbPath)
	if err != nil {
		panic(err)
	}
	defer engine.Close()

	pipeline, err := engine.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()

	if *csvPath != "" {
		f, err := os.Open(*csvPath)
		if err != nil {
			panic(err)
		}
		defer f.Close()

		report, err := pipeline.IngestCSV(ctx, f)
		if err != nil {
			panic(err)
		}
		slog.Info("seeded from csv", "total", report.Total, "skipped", report.Skipped)
		return
	}

	report, err := pipeline.IngestEvents(ctx, sampleEvents)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded sample events", "total", report.Total)
}
