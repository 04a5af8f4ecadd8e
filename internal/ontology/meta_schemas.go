package ontology

import _ "embed"

// taxonomyMetaSchema and ontologyMetaSchema describe the shape the two
// ontology resource files must take. They are validated the same way the
// classifier validates structured LLM output: the files are just another
// external collaborator that can hand back malformed JSON.

//go:embed meta/taxonomy.schema.json
var taxonomyMetaSchema []byte

//go:embed meta/ontology.schema.json
var ontologyMetaSchema []byte
