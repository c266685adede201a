// Package remote parses git remote URLs into the coordinates issue trackers
// need: host, organization, owner and repository name.
//
// Supported forms:
//
//	https://github.com/acme/widgets.git
//	ssh://git@gitlab.example.com:2222/group/sub/project.git
//	git@github.com:acme/widgets.git
//	https://acme@dev.azure.com/acme/Platform/_git/api
//	git@ssh.dev.azure.com:v3/acme/Platform/api
//
// Owner is every path segment before the repository name, so GitLab subgroups
// survive as "group/sub". Azure DevOps remotes additionally fill Organization,
// with Owner holding the project.
package remote
