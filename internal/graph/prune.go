package graph

import "github.com/corpusgraph/corpusgraph/internal/ontology"

// Prune implements spec.md §4.2.3's two-pass ontology conformance check and
// edge materialization. It never mutates atoms; it returns the surviving
// subset plus the validated, deduplicated edge set.
func Prune(ont *ontology.Ontology, atoms []AnnotatedAtom) ([]AnnotatedAtom, []ValidatedRelationship, Report) {
	report := Report{TotalAtoms: len(atoms)}

	// Pass 1: drop atoms whose classification isn't in valid_classes, then
	// drop any relationship whose target doesn't survive or whose
	// direction/type is unknown.
	survivingByID := make(map[string]AnnotatedAtom, len(atoms))
	var surviving []AnnotatedAtom
	for _, a := range atoms {
		if !ont.IsValidClass(a.Classification) {
			report.DroppedAtoms++
			continue
		}
		surviving = append(surviving, a)
		survivingByID[a.ID] = a
	}

	type candidate struct {
		sourceID string
		rel      ProposedRelationship
	}
	var pass1 []candidate
	for _, a := range surviving {
		for _, rel := range a.Relationships {
			if _, ok := survivingByID[rel.TargetID]; !ok {
				report.DroppedEdges++
				continue
			}
			if rel.Direction != "outgoing" && rel.Direction != "incoming" {
				report.DroppedEdges++
				continue
			}
			if _, ok := ont.Rule(rel.Type); !ok {
				report.DroppedEdges++
				continue
			}
			pass1 = append(pass1, candidate{sourceID: a.ID, rel: rel})
		}
	}

	// Pass 2: check source/target classification against the relationship
	// type's valid_sources/valid_targets, respecting direction.
	classOf := func(id string) string { return survivingByID[id].Classification }

	type edgeKey struct{ source, target, typ string }
	seen := make(map[edgeKey]struct{})
	var edges []ValidatedRelationship

	for _, c := range pass1 {
		rule, _ := ont.Rule(c.rel.Type)

		var sourceID, targetID string
		var sourceClass, targetClass string
		if c.rel.Direction == "outgoing" {
			sourceID, targetID = c.sourceID, c.rel.TargetID
		} else {
			sourceID, targetID = c.rel.TargetID, c.sourceID
		}
		sourceClass = classOf(sourceID)
		targetClass = classOf(targetID)

		if !inSet(rule.ValidSources, sourceClass) || !inSet(rule.ValidTargets, targetClass) {
			report.DroppedEdges++
			continue
		}

		key := edgeKey{source: sourceID, target: targetID, typ: c.rel.Type}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		edges = append(edges, ValidatedRelationship{
			SourceAtomID:  sourceID,
			TargetAtomID:  targetID,
			Type:          c.rel.Type,
			Justification: c.rel.Justification,
		})
	}

	return surviving, edges, report
}

func inSet(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}
