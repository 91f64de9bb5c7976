package mole

import "github.com/saulo-duarte/dinolingo-lambda/internal/exercise"

func dummySet() *exercise.GrammarSet {
	return &exercise.GrammarSet{
		ExerciseList: []exercise.Grammar{
			{
				Exercise:    "Il est aller à l'école.",
				Words:       []string{"Il", "est", "aller", "à", "l'école"},
				Answer:      "aller",
				Explanation: "The verb 'aller' should be conjugated as 'allé' to agree with the subject.",
			},
			{
				Exercise:    "Elle a mange une pomme.",
				Words:       []string{"Elle", "a", "mange", "une", "pomme"},
				Answer:      "mange",
				Explanation: "The verb 'mange' should be 'mangé' to correctly form the past tense.",
			},
			{
				Exercise:    "Nous sommes contentes de vous voir.",
				Words:       []string{"Nous", "sommes", "contentes", "de", "vous", "voir"},
				Answer:      "contentes",
				Explanation: "The adjective 'contentes' should agree in gender with the subject 'nous' if it refers to males or a mixed group.",
			},
			{
				Exercise:    "Ils ont fini leurs devoir.",
				Words:       []string{"Ils", "ont", "fini", "leurs", "devoir"},
				Answer:      "devoir",
				Explanation: "The noun 'devoir' should be pluralized as 'devoirs' to match the context.",
			},
			{
				Exercise:    "Tu as pris ta clés.",
				Words:       []string{"Tu", "as", "pris", "ta", "clés"},
				Answer:      "ta",
				Explanation: "The possessive 'ta' should be 'tes' to agree with the plural noun 'clés'.",
			},
			{
				Exercise:    "Marie est allé à la maison hier soir.",
				Words:       []string{"Marie", "est", "allé", "à", "la", "maison", "hier", "soir"},
				Answer:      "allé",
				Explanation: "The past participle 'allé' should be 'allée' to agree with the feminine subject 'Marie'.",
			},
			{
				Exercise:    "Les enfant jouent dans le parc.",
				Words:       []string{"Les", "enfant", "jouent", "dans", "le", "parc"},
				Answer:      "enfant",
				Explanation: "The noun 'enfant' should be pluralized as 'enfants' to match the plural subject.",
			},
			{
				Exercise:    "Vous avez oublier vos clés.",
				Words:       []string{"Vous", "avez", "oublier", "vos", "clés"},
				Answer:      "oublier",
				Explanation: "The verb 'oublier' should be 'oublié' to correctly form the past tense.",
			},
			{
				Exercise:    "Il a vu son amis hier soir.",
				Words:       []string{"Il", "a", "vu", "son", "amis", "hier", "soir"},
				Answer:      "son",
				Explanation: "The possessive 'son' should be 'ses' to agree with the plural noun 'amis'.",
			},
			{
				Exercise:    "La fille que j'ai vu hier est gentille.",
				Words:       []string{"La", "fille", "que", "j'ai", "vu", "hier", "est", "gentille"},
				Answer:      "vu",
				Explanation: "The past participle 'vu' should be 'vue' to agree with the feminine direct object 'fille'.",
			},
		},
	}
}
