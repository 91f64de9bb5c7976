package dino

import "github.com/saulo-duarte/dinolingo-lambda/internal/exercise"

func dummySet() *exercise.VocabularySet {
	return &exercise.VocabularySet{
		ExerciseList: []exercise.Vocabulary{
			{EnglishWord: "Computer", RightTranslation: "Ordinateur", WrongTranslation: "Clavier"},
			{EnglishWord: "Table", RightTranslation: "Table", WrongTranslation: "Chaise"},
			{EnglishWord: "Book", RightTranslation: "Livre", WrongTranslation: "Cahier"},
			{EnglishWord: "Car", RightTranslation: "Voiture", WrongTranslation: "Bicyclette"},
			{EnglishWord: "Dog", RightTranslation: "Chien", WrongTranslation: "Chat"},
			{EnglishWord: "House", RightTranslation: "Maison", WrongTranslation: "Appartement"},
			{EnglishWord: "Water", RightTranslation: "Eau", WrongTranslation: "Lait"},
			{EnglishWord: "Sun", RightTranslation: "Soleil", WrongTranslation: "Lune"},
			{EnglishWord: "Tree", RightTranslation: "Arbre", WrongTranslation: "Buisson"},
			{EnglishWord: "Chair", RightTranslation: "Chaise", WrongTranslation: "Canapé"},
		},
	}
}
