package linreg

import (
	"context"
	"fmt"

	"github.com/vk/temples/internal/artifact"
	"github.com/vk/temples/internal/config"
	"github.com/vk/temples/internal/table"
)

// Keys of the env document naming each artifact's config-relative path.
const (
	envRawData      = "raw_data"
	envFeatures     = "features"
	envTargets      = "targets"
	envTrainedModel = "trained_model"
	envTableFormat  = "table_format"
)

// TargetColumn is the column holding the regression target.
const TargetColumn = "target"

// Artifacts are the files the pipeline reads and writes.
type Artifacts struct {
	RawData  *artifact.Data[table.Table]
	Features *artifact.Data[table.Table]
	Targets  *artifact.Data[table.Table]
	Model    *artifact.Data[Ridge]
}

// NewArtifacts builds the pipeline's artifacts from the env document. Every
// path key is required. The optional table_format key selects "csv" (the
// default) or "sqlite" storage for the tables.
func NewArtifacts(ctx context.Context, store *config.Store) (*Artifacts, error) {
	env, err := store.Env(ctx)
	if err != nil {
		return nil, err
	}

	format, err := config.ValueOr(env, "csv", envTableFormat)
	if err != nil {
		return nil, err
	}
	tableCodec, err := tableCodecFor(format)
	if err != nil {
		return nil, err
	}

	paths := make(map[string]string, 4)
	for _, key := range []string{envRawData, envFeatures, envTargets, envTrainedModel} {
		p, err := config.Value[string](env, key)
		if err != nil {
			return nil, err
		}
		paths[key] = p
	}

	rel := artifact.RelativeTo(store)
	return &Artifacts{
		RawData: artifact.New(paths[envRawData], tableCodec, rel,
			artifact.WithName(envRawData), artifact.WithSchema(rawSchema())),
		Features: artifact.New(paths[envFeatures], tableCodec, rel,
			artifact.WithName(envFeatures)),
		Targets: artifact.New(paths[envTargets], tableCodec, rel,
			artifact.WithName(envTargets),
			artifact.WithSchema(artifact.Schema{{Name: TargetColumn, Type: "float"}})),
		Model: artifact.New[Ridge](paths[envTrainedModel], artifact.Msgpack[Ridge]{}, rel,
			artifact.WithName(envTrainedModel)),
	}, nil
}

func tableCodecFor(format string) (artifact.Codec[table.Table], error) {
	switch format {
	case "csv":
		return artifact.CSV{}, nil
	case "sqlite":
		return artifact.SQLite{}, nil
	default:
		return nil, fmt.Errorf("unsupported table_format %q: must be 'csv' or 'sqlite'", format)
	}
}

// rawSchema lists the generated feature columns followed by the target.
func rawSchema() artifact.Schema {
	s := make(artifact.Schema, 0, numFeatures+1)
	for _, name := range featureNames(numFeatures) {
		s = append(s, artifact.Field{Name: name, Type: "float"})
	}
	return append(s, artifact.Field{Name: TargetColumn, Type: "float"})
}
