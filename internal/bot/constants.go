package bot

const (
	actionAddRecipe  = "add_recipe"
	actionPublish    = "publish"
	actionEditTeaser = "edit_teaser"
	actionEditFull   = "edit_full"
	actionCancel     = "cancel"
	actionShowRecipe = "show_recipe"

	draftSweepJobTag = "draft_sweep_job"
)
