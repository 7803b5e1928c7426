package usecase

type TroubleshootingResult struct {
	Issue   string
	Heading string
	Steps   []string
}
