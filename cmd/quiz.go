package cmd

import (
	"fmt"

	"github.com/abhisek/tutor/internal/console"
	"github.com/abhisek/tutor/internal/learner"
	"github.com/abhisek/tutor/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take one quiz and review the misses, without chat",
	RunE:  runQuiz,
}

func init() {
	quizCmd.Flags().String("name", "", "Learner name (required)")
	quizCmd.Flags().String("topic", quiz.DefaultTopic, "Quiz topic")
	quizCmd.Flags().String("level", quiz.DefaultLevel, "Difficulty level")
	quizCmd.Flags().IntP("questions", "q", 0, "Number of questions (default from config)")
	_ = quizCmd.MarkFlagRequired("name")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name, _ := cmd.Flags().GetString("name")
	topic, _ := cmd.Flags().GetString("topic")
	level, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("questions")

	key, err := learner.Key(name)
	if err != nil {
		return err
	}

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if count > 0 {
		e.cfg.Quiz.QuestionCount = count
	}

	provider, err := e.provider(ctx)
	if err != nil {
		return err
	}

	ui := console.Stdio()
	orch := e.orchestrator(provider, ui)

	prof, err := learner.NewIntake(provider, e.store.ProfileRepo(), e.cfg.Intake, e.log).Load(ctx, name)
	if err != nil {
		return err
	}
	if prof == nil {
		ui.Info(fmt.Sprintf("No learning profile for %s yet; run tutor to create one. Quizzing without preferences.", name))
	}

	st := &quiz.SessionState{Name: name, Key: key, Topic: topic, Level: level, Profile: prof}
	ui.Title(fmt.Sprintf("Quiz: %s (%s)", topic, level))
	if err := orch.RunQuiz(ctx, st); err != nil {
		return err
	}
	if st.LastResult == nil {
		return fmt.Errorf("quiz was not completed")
	}
	orch.RunReview(ctx, st)
	return nil
}
