package teach

import "github.com/saulo-duarte/dinolingo-lambda/internal/exercise"

func dummyReply() *exercise.ChatReply {
	translation := "Hello! I'm DinoLingo, your French learning assistant!"
	audio := "Bonjour"
	return &exercise.ChatReply{
		Response:    "Bonjour! Je suis DinoLingo, ton assistant d'apprentissage du français!",
		Translation: &translation,
		AudioText:   &audio,
	}
}
