package ontology

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// taxonomyFile is the on-disk shape of the taxonomy resource: §6.3.
type taxonomyFile struct {
	ValidClasses []string `json:"valid_classes"`
}

// ontologyFile is the on-disk shape of the ontology resource: §6.3.
type ontologyFile struct {
	Relationships map[string]struct {
		ValidSources []string `json:"valid_sources"`
		ValidTargets []string `json:"valid_targets"`
	} `json:"relationships"`
}

// Load reads and validates the taxonomy and ontology resource files and
// builds the in-memory Ontology. Both files are validated against an
// embedded meta-schema before being interpreted; a missing or malformed
// file is an external-collaborator failure (§7), not a recoverable defect,
// so Load returns an error rather than an empty Ontology.
func Load(taxonomyPath, ontologyPath string) (*Ontology, error) {
	taxonomyRaw, err := os.ReadFile(taxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy file %q: %w", taxonomyPath, err)
	}
	if err := validateAgainstMetaSchema(taxonomyMetaSchema, taxonomyRaw, "taxonomy"); err != nil {
		return nil, err
	}

	ontologyRaw, err := os.ReadFile(ontologyPath)
	if err != nil {
		return nil, fmt.Errorf("reading ontology file %q: %w", ontologyPath, err)
	}
	if err := validateAgainstMetaSchema(ontologyMetaSchema, ontologyRaw, "ontology"); err != nil {
		return nil, err
	}

	var tf taxonomyFile
	if err := json.Unmarshal(taxonomyRaw, &tf); err != nil {
		return nil, fmt.Errorf("decoding taxonomy file %q: %w", taxonomyPath, err)
	}

	var of ontologyFile
	if err := json.Unmarshal(ontologyRaw, &of); err != nil {
		return nil, fmt.Errorf("decoding ontology file %q: %w", ontologyPath, err)
	}

	return build(tf, of)
}

func build(tf taxonomyFile, of ontologyFile) (*Ontology, error) {
	validClasses := make(map[string]struct{}, len(tf.ValidClasses))
	for _, c := range tf.ValidClasses {
		validClasses[c] = struct{}{}
	}

	rules := make(map[string]Rule, len(of.Relationships))
	for name, r := range of.Relationships {
		sources := make(map[string]struct{}, len(r.ValidSources))
		for _, s := range r.ValidSources {
			sources[s] = struct{}{}
		}
		targets := make(map[string]struct{}, len(r.ValidTargets))
		for _, t := range r.ValidTargets {
			targets[t] = struct{}{}
		}
		rules[name] = Rule{ValidSources: sources, ValidTargets: targets}
	}

	return &Ontology{validClasses: validClasses, rules: rules}, nil
}

func validateAgainstMetaSchema(metaSchema, doc []byte, label string) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(label+".meta.json", bytes.NewReader(metaSchema)); err != nil {
		return fmt.Errorf("loading %s meta-schema: %w", label, err)
	}
	schema, err := compiler.Compile(label + ".meta.json")
	if err != nil {
		return fmt.Errorf("compiling %s meta-schema: %w", label, err)
	}

	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return fmt.Errorf("%s file is not valid JSON: %w", label, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%s file does not match expected shape: %w", label, err)
	}
	return nil
}
