package eventmatch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/eventmatch/recommend"
)

func TestNewEngine(t *testing.T) {
	t.Run("create new engine", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		engine, err := NewEngine(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, engine)
		defer engine.Close()

		// Verify components are initialized
		assert.NotNil(t, engine.EventRepository())
		assert.NotNil(t, engine.AuditRepository())
		assert.NotNil(t, engine.Taxonomy())
		assert.NotNil(t, engine.backend)
		assert.NotNil(t, engine.logger)
		assert.False(t, engine.HasAI())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create an engine at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		engine, err := NewEngine(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, engine)
	})
}

func TestEngine_Close(t *testing.T) {
	engine, err := NewEngine("", WithInMemoryStorage())
	require.NoError(t, err)
	require.NotNil(t, engine)

	err = engine.Close()
	assert.NoError(t, err)
}

func TestEngine_FactoryMethods(t *testing.T) {
	engine, err := NewEngine("", WithInMemoryStorage())
	require.NoError(t, err)
	require.NotNil(t, engine)
	defer engine.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := engine.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create recommender", func(t *testing.T) {
		recommender, err := engine.NewRecommender()
		require.NoError(t, err)
		require.NotNil(t, recommender)
	})
}

func TestEngine_IngestThenRecommend(t *testing.T) {
	engine, err := NewEngine("", WithInMemoryStorage())
	require.NoError(t, err)
	defer engine.Close()

	csv := `event_name,event_date,event_time,event_location,event_description,hosted_by,price,usage_tags,industry_tags,women_specific
Wellness Founders Dinner,"Thu, Oct 8",7 PM,SoHo,Dinner connecting wellness founders with angel investors,Poiesic,Free,"['find-angels', 'networking']",['wellness'],true
Crypto Gaming Night,"Fri, Oct 9",8 PM,Brooklyn,Arcade night for web3 gamers,,,['networking'],"['web3', 'gaming']",false
`
	pipeline, err := engine.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	report, err := pipeline.IngestCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 2, report.Total)

	recommender, err := engine.NewRecommender()
	require.NoError(t, err)

	rec, err := recommender.Recommend(context.Background(), &recommend.Request{
		Query: "angel investors for my wellness startup",
	})
	require.NoError(t, err)
	require.NotZero(t, rec.Count)
	assert.Equal(t, "Wellness Founders Dinner", rec.Results[0].Event.Name)
}
