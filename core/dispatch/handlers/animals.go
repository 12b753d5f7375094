package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"CmdBot/core"
	"CmdBot/core/dispatch"
)

var animalKinds = []string{"cat", "dog", "bird", "panda", "fox", "kangaroo", "raccoon", "kitten"}

// RegisterAnimals registers the random command, which replies with a random
// animal image and fact. The animal argument captures through its literal
// allow-list; with no (or an unknown) animal the command lists what it knows.
func RegisterAnimals(r *dispatch.Registry) error {
	_, err := r.Register("random", dispatch.CommandOptions{
		Description: "Show image of a random animal. Supports cat, dog, bird, panda, fox, kangaroo, raccoon, and kitten",
		Args: []*dispatch.Argument{
			{Name: "animal", Type: dispatch.TypeString, Optional: true, Literals: animalKinds},
		},
		Execute: func(m *dispatch.Message) {
			if !m.Args.Has("animal") {
				m.ReplyToChannel("I know of the following random images: cat, dog, bird, panda, fox, kangaroo, raccoon and kitten.")
				return
			}
			// recorded tokens keep their original casing
			switch animal := strings.ToLower(m.Args.String("animal")); animal {
			case "kitten":
				m.ReplyToChannel("http://www.randomkittengenerator.com/cats/rotator.php/%d.jpg", time.Now().Nanosecond())
			default:
				replyRandomAnimal(m, animal)
			}
		},
	})
	return err
}

func replyRandomAnimal(m *dispatch.Message, animal string) {
	type animalModel struct {
		Url  string `json:"image"`
		Fact string `json:"fact"`
	}
	res, err := http.Get(fmt.Sprintf("https://some-random-api.com/animal/%s", animal))
	if err != nil {
		m.ReplyToChannel("Unfortunately, I failed to find a random %s for you today. :-(", animal)
		core.LogError("Failed to get animal: ", err)
		return
	}
	defer res.Body.Close()
	var model animalModel
	decoder := json.NewDecoder(res.Body)
	err = decoder.Decode(&model)
	if err != nil || len(model.Url) == 0 {
		m.ReplyToChannel("The %s were not parsable today. :-(", animal)
		core.LogError("Failed to parse response", err)
		return
	}
	m.ReplyToChannel("%s\n\n%s", model.Fact, model.Url)
}
