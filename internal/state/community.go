package state

import "go.uber.org/zap"

func (a *App) JoinCommunity(id string) error {
	return a.setCommunityJoined(id, true)
}

func (a *App) LeaveCommunity(id string) error {
	return a.setCommunityJoined(id, false)
}

func (a *App) setCommunityJoined(id string, joined bool) error {
	for i := range a.communities {
		if a.communities[i].ID != id {
			continue
		}
		a.communities[i].Joined = joined
		if err := saveDoc(a.kv, keyCommunities, a.communities); err != nil {
			return err
		}
		a.log.Debug("community membership changed",
			zap.String("id", id), zap.Bool("joined", joined))
		return nil
	}
	return nil
}

// EnrollInChallenge marks the nested challenge enrolled and resets the
// Community Leader achievement to the live count of enrolled challenges
// across all communities. A no-op if either identifier is absent.
func (a *App) EnrollInChallenge(communityID, challengeID string) error {
	for i := range a.communities {
		if a.communities[i].ID != communityID {
			continue
		}
		for j := range a.communities[i].Challenges {
			if a.communities[i].Challenges[j].ID != challengeID {
				continue
			}
			a.communities[i].Challenges[j].Enrolled = true
			if err := saveDoc(a.kv, keyCommunities, a.communities); err != nil {
				return err
			}
			a.log.Debug("challenge enrolled",
				zap.String("community", communityID), zap.String("challenge", challengeID))
			return a.setAchievementProgress(achievementCommunityLeader, EnrolledChallenges(a.communities))
		}
		return nil
	}
	return nil
}

// UpdateChallengeProgress stores progress verbatim; the five-step 0/25/50/
// 75/100 granularity is a caller convention, not enforced here. A no-op if
// either identifier is absent.
func (a *App) UpdateChallengeProgress(communityID, challengeID string, progress int) error {
	for i := range a.communities {
		if a.communities[i].ID != communityID {
			continue
		}
		for j := range a.communities[i].Challenges {
			if a.communities[i].Challenges[j].ID != challengeID {
				continue
			}
			a.communities[i].Challenges[j].Progress = progress
			if err := saveDoc(a.kv, keyCommunities, a.communities); err != nil {
				return err
			}
			a.log.Debug("challenge progress updated",
				zap.String("challenge", challengeID), zap.Int("progress", progress))
			return nil
		}
		return nil
	}
	return nil
}
