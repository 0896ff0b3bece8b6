package seeder

import (
	"context"
	"log"

	"Backend-Uppass-Flows/src/models"
	"Backend-Uppass-Flows/src/services/choices"
	"Backend-Uppass-Flows/src/services/flows"
)

// SeedSampleFlow creates a sample survey for testing
func SeedSampleFlow(ctx context.Context) error {
	ratings := []models.Choice{
		{Value: "Very satisfied"},
		{Value: "Satisfied"},
		{Value: "Neutral"},
		{Value: "Dissatisfied"},
	}
	for i := range ratings {
		if err := choices.CreateChoice(ctx, &ratings[i]); err != nil {
			return err
		}
	}

	ratingGroup := models.ChoiceGroup{Name: "Satisfaction ratings"}
	for _, c := range ratings {
		ratingGroup.ChoiceIDs = append(ratingGroup.ChoiceIDs, c.ID)
	}
	if err := choices.CreateChoiceGroup(ctx, &ratingGroup); err != nil {
		return err
	}

	flow := models.Flow{Name: "Visitor Survey", IsPublic: true}
	if err := flows.CreateFlow(ctx, &flow); err != nil {
		return err
	}

	section := models.FormGroup{
		FlowID:       flow.ID,
		Name:         "Section 1",
		DisplayOrder: 1,
		IsPublic:     true,
	}
	if err := flows.CreateFormGroup(ctx, &section); err != nil {
		return err
	}

	elements := []models.FormElement{
		{
			FormGroupID:  section.ID,
			Name:         "Full name",
			Datatype:     models.TypeText,
			Required:     true,
			DisplayOrder: 1,
			IsPublic:     true,
		},
		{
			FormGroupID:  section.ID,
			Name:         "Age",
			Datatype:     models.TypeInt,
			Required:     true,
			DisplayOrder: 2,
			IsPublic:     true,
		},
		{
			FormGroupID:  section.ID,
			Name:         "Visit date",
			Datatype:     models.TypeDate,
			DisplayOrder: 3,
			IsPublic:     true,
		},
		{
			FormGroupID:   section.ID,
			Name:          "Overall satisfaction",
			Datatype:      models.TypeEnum,
			Required:      true,
			DisplayOrder:  4,
			ChoiceGroupID: &ratingGroup.ID,
			IsPublic:      true,
		},
		{
			FormGroupID:  section.ID,
			Name:         "Would you come back",
			Datatype:     models.TypeBoolean,
			DisplayOrder: 5,
			IsPublic:     true,
		},
	}
	for i := range elements {
		if err := flows.CreateFormElement(ctx, &elements[i]); err != nil {
			return err
		}
	}

	log.Printf("[seeder] created sample flow %q with %d elements", flow.Slug, len(elements))
	return nil
}
