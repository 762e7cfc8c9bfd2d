package database

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// subjectCatalog defines the fixed syllabus. Weightage is the subject's
// share of the 200 exam marks; each topic gets an even split of it.
type subjectCatalog struct {
	Subject   string
	Unit      string
	Weightage float64
	Topics    []string
}

var syllabusCatalog = []subjectCatalog{
	{
		Subject:   "Mathematical Analysis",
		Unit:      "Unit 1",
		Weightage: 30,
		Topics: []string{
			"Real number system and sequences",
			"Continuity, differentiability and Riemann integration",
			"Series and uniform convergence",
			"Functions of several variables and Jacobians",
		},
	},
	{
		Subject:   "Linear Algebra",
		Unit:      "Unit 1",
		Weightage: 25,
		Topics: []string{
			"Vector spaces, basis, dimension",
			"Linear transformations and matrix representations",
			"Eigenvalues, eigenvectors and diagonalization",
			"Inner product spaces and spectral theorem",
		},
	},
	{
		Subject:   "Complex Analysis",
		Unit:      "Unit 2",
		Weightage: 20,
		Topics: []string{
			"Analytic functions and Cauchy-Riemann equations",
			"Cauchy integral theorem and formula",
			"Laurent series and residue calculus",
			"Conformal mappings",
		},
	},
	{
		Subject:   "Algebra",
		Unit:      "Unit 2",
		Weightage: 25,
		Topics: []string{
			"Groups, subgroups and quotient groups",
			"Rings, ideals and homomorphisms",
			"Polynomial rings and irreducibility",
			"Fields and finite fields",
		},
	},
	{
		Subject:   "Ordinary Differential Equations",
		Unit:      "Unit 3",
		Weightage: 15,
		Topics: []string{
			"First order equations",
			"Linear differential equations",
			"Existence and uniqueness theorems",
			"Sturm-Liouville problems",
		},
	},
	{
		Subject:   "Partial Differential Equations",
		Unit:      "Unit 3",
		Weightage: 15,
		Topics: []string{
			"First order PDEs",
			"Second order PDE classification",
			"Laplace, wave and heat equations",
			"Fourier methods and boundary value problems",
		},
	},
	{
		Subject:   "Numerical Analysis",
		Unit:      "Unit 3",
		Weightage: 10,
		Topics: []string{
			"Errors and floating point arithmetic",
			"Interpolation and numerical differentiation",
			"Numerical integration",
			"Solutions of algebraic and differential equations",
		},
	},
	{
		Subject:   "Calculus of Variations",
		Unit:      "Unit 3",
		Weightage: 10,
		Topics: []string{
			"Euler-Lagrange equations",
			"Variational principles",
			"Constraints and Lagrange multipliers",
		},
	},
	{
		Subject:   "Classical Mechanics",
		Unit:      "Unit 3",
		Weightage: 10,
		Topics: []string{
			"Lagrangian and Hamiltonian formulations",
			"Central force motion",
			"Rigid body dynamics",
		},
	},
	{
		Subject:   "Probability and Statistics",
		Unit:      "Unit 4",
		Weightage: 40,
		Topics: []string{
			"Random variables and distributions",
			"Expectation and moments",
			"Limit theorems",
			"Estimation and hypothesis testing",
		},
	},
}

type routineSeed struct {
	Order     int
	TimeLabel string
	Title     string
}

var routineCatalog = []routineSeed{
	{1, "05:30 AM", "Wake up & freshen up"},
	{2, "06:00 AM", "Study Session 1"},
	{3, "09:00 AM", "Breakfast break"},
	{4, "09:30 AM", "Study Session 2"},
	{5, "01:00 PM", "Lunch & rest"},
	{6, "03:00 PM", "PYQ practice"},
	{7, "06:00 PM", "Revision block"},
	{8, "09:00 PM", "Plan tomorrow & wind down"},
}

// Seed inserts the routine and syllabus catalogs. It is idempotent: rows
// already present (matched by unique title/slug) are skipped.
func Seed(ctx context.Context) {
	for _, r := range routineCatalog {
		_, err := DB.ExecContext(ctx, `
			INSERT INTO routine_templates (id, title, display_order, time_label)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (title) DO NOTHING`,
			uuid.NewString(), r.Title, r.Order, r.TimeLabel,
		)
		if err != nil {
			log.Fatalf("Error seeding routine templates: %v", err)
		}
	}

	for _, subject := range syllabusCatalog {
		weight := subject.Weightage / float64(len(subject.Topics))
		for _, topic := range subject.Topics {
			_, err := DB.ExecContext(ctx, `
				INSERT INTO syllabus_topics (id, subject, unit, topic, slug, weight)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (slug) DO NOTHING`,
				uuid.NewString(), subject.Subject, subject.Unit, topic,
				slug.Make(subject.Subject+" "+topic), weight,
			)
			if err != nil {
				log.Fatalf("Error seeding syllabus topics: %v", err)
			}
		}
	}

	log.Printf("Seeded %d routine slots and %d syllabus subjects.", len(routineCatalog), len(syllabusCatalog))
}
