package cli

import (
	"context"
	"fmt"

	"github.com/lanxpert/lanxpert-cli/internal/client/api"
	"github.com/lanxpert/lanxpert-cli/internal/client/models"
	"github.com/lanxpert/lanxpert-cli/internal/client/services"
)

// onboardingScreen collects the profile fields everything else depends on:
// native language, target language, interface language.
func (a *App) onboardingScreen(ctx context.Context) {
	fmt.Fprintln(a.out, "Let's set up your languages.")

	names := make([]string, len(models.Languages))
	for i, l := range models.Languages {
		names[i] = l.Name
	}

	native, err := promptChoice(a.reader, "Which language do you speak natively?", names, a.out)
	if err != nil {
		return
	}
	target, err := promptChoice(a.reader, "Which language are you learning?", names, a.out)
	if err != nil {
		return
	}
	if target == native {
		fmt.Fprintln(a.out, "Pick a language different from your native one.")
		return
	}
	iface, err := promptChoice(a.reader, "Which language should the app use?", names, a.out)
	if err != nil {
		return
	}

	nativeID := models.Languages[native].ID
	targetID := models.Languages[target].ID
	ifaceID := models.Languages[iface].ID
	_, err = a.svc.Users.UpdateMe(ctx, models.UserUpdate{
		NativeLanguageID:    &nativeID,
		TargetLanguageID:    &targetID,
		InterfaceLanguageID: &ifaceID,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Could not save your profile:", api.Detail(err))
		return
	}

	u, err := a.session.Refresh(ctx)
	if err != nil {
		return
	}
	fmt.Fprintf(a.out, "All set: %s speaker learning %s.\n",
		models.LanguageName(u.NativeLanguageID), models.LanguageName(u.TargetLanguageID))

	if dest := Resolve(u, ScreenDashboard); dest != ScreenDashboard {
		a.render(ctx, dest)
	}
}

// settingsScreen lets the user change profile fields after onboarding.
func (a *App) settingsScreen(ctx context.Context) {
	u := a.session.Get()
	if u == nil {
		return
	}
	fmt.Fprintf(a.out, "Profile: %s <%s>\n", u.Username, u.Email)
	fmt.Fprintf(a.out, "Native: %s | Learning: %s | Interface: %s\n",
		models.LanguageName(u.NativeLanguageID),
		models.LanguageName(u.TargetLanguageID),
		models.LanguageName(u.InterfaceLanguageID))
	fmt.Fprintf(a.out, "Plan: %s\n", planName(u))

	mode := "expert (questions about your native language)"
	if a.svc.Questions.ForMe() == services.ForMeLearner {
		mode = "learner (questions about the language you study)"
	}
	fmt.Fprintln(a.out, "'For me' tab mode:", mode)

	change, err := confirm(a.reader, "Switch the 'For me' mode?", a.out)
	if err != nil || !change {
		return
	}
	if a.svc.Questions.ForMe() == services.ForMeExpert {
		a.svc.Questions.SetForMeMode(services.ForMeLearner)
	} else {
		a.svc.Questions.SetForMeMode(services.ForMeExpert)
	}
	fmt.Fprintln(a.out, "Done.")
}

func planName(u *models.User) string {
	if u.Plan != nil {
		return u.Plan.Name
	}
	if u.HasPaidPlan() {
		return u.PlanID
	}
	return "Free"
}
