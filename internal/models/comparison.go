package models

// ComparisonResult is the structured report produced by one comparison. The
// phase sections mirror the JSON contract the prompt asks the model to fill;
// decoding is lenient on purpose (missing fields stay zero-valued, unknown
// fields are dropped) because the upstream output is prompt-shaped, not
// schema-enforced. ChainOfCustody is computed locally and is never taken
// from the provider response.
type ComparisonResult struct {
	ChainOfCustody ChainOfCustody `json:"chainOfCustody"`

	Phase1 Phase1Structural     `json:"phase1"`
	Phase2 Phase2Micro          `json:"phase2"`
	Phase3 Phase3Statistical    `json:"phase3"`
	Phase4 Phase4Reconstruction `json:"phase4"`
	Phase5 Phase5Consolidation  `json:"phase5"`

	VisualMapping *VisualMapping `json:"visualMapping,omitempty"`
	FinalResult   FinalResult    `json:"finalResult"`
}

// ChainOfCustody is the tamper-evident block attached to every result:
// SHA-256 of the exact uploaded bytes, stamped client-side.
type ChainOfCustody struct {
	CaseID            string `json:"caseId"`
	File1Hash         string `json:"file1Hash"`
	File2Hash         string `json:"file2Hash"`
	Timestamp         int64  `json:"timestamp"` // unix milliseconds
	IntegrityVerified bool   `json:"integrityVerified"`
}

// AgentReport carries the fields shared by every agent section.
type AgentReport struct {
	Confidence float64  `json:"confidence"`
	Directives []string `json:"directives"`
}

type Phase1Structural struct {
	AgentAlpha struct {
		AgentReport
		PatternType string `json:"patternType"`
	} `json:"agentAlpha"`
	AgentBeta struct {
		AgentReport
		QualityMetric string `json:"qualityMetric"`
		NoiseLevel    string `json:"noiseLevel"`
	} `json:"agentBeta"`
	AgentGamma struct {
		AgentReport
		RidgeFlow        string `json:"ridgeFlow"`
		BifurcationCount int    `json:"bifurcationCount"`
	} `json:"agentGamma"`
	AgentDelta struct {
		AgentReport
		FeatureVectorSize      int    `json:"featureVectorSize"`
		MathematicalComplexity string `json:"mathematicalComplexity"`
	} `json:"agentDelta"`
	AgentEpsilon struct {
		AgentReport
		ReconstructionNeeded bool   `json:"reconstructionNeeded"`
		PartialArea          string `json:"partialArea"`
	} `json:"agentEpsilon"`
	AgentRho struct {
		AgentReport
		SubstrateAnalysis  string `json:"substrateAnalysis"`
		IndirectReflection bool   `json:"indirectReflection"`
	} `json:"agentRho"`
	AgentLyra struct {
		AgentReport
		Geometry string `json:"geometry"`
		Symmetry string `json:"symmetry"`
	} `json:"agentLyra"`
	AgentHelios struct {
		AgentReport
		LightingCorrection string `json:"lightingCorrection"`
		ShadowRemoved      bool   `json:"shadowRemoved"`
	} `json:"agentHelios"`
}

type Phase2Micro struct {
	AgentZeta struct {
		AgentReport
		MatchPrecision string `json:"matchPrecision"`
		MinutiaePairs  int    `json:"minutiaePairs"`
	} `json:"agentZeta"`
	AgentSigma struct {
		AgentReport
		PoreCount int    `json:"poreCount"`
		EdgeShape string `json:"edgeShape"`
	} `json:"agentSigma"`
	AgentTheta struct {
		AgentReport
		DistortionDetected bool    `json:"distortionDetected"`
		TorsionAngle       float64 `json:"torsionAngle"`
	} `json:"agentTheta"`
	AgentKappa struct {
		AgentReport
		ScaleRatio  float64 `json:"scaleRatio"`
		SubsetMatch bool    `json:"subsetMatch"`
	} `json:"agentKappa"`
	AgentIota struct {
		AgentReport
		AnatomicalLandmarks int    `json:"anatomicalLandmarks"`
		VisualPath          string `json:"visualPath"`
	} `json:"agentIota"`
	AgentQuanta struct {
		AgentReport
		NanoDetails      string  `json:"nanoDetails"`
		SubPixelAccuracy float64 `json:"subPixelAccuracy"`
	} `json:"agentQuanta"`
}

type Phase3Statistical struct {
	AgentPhi struct {
		AgentReport
		LikelihoodRatio float64 `json:"likelihoodRatio"`
		PRC             string  `json:"prc"`
	} `json:"agentPhi"`
	AgentPsi struct {
		AgentReport
		CrossLinkConfirmed       bool    `json:"crossLinkConfirmed"`
		SourceIdentityConfidence float64 `json:"sourceIdentityConfidence"`
	} `json:"agentPsi"`
	AgentAtlas struct {
		AgentReport
		GlobalDbSearch  string `json:"globalDbSearch"`
		FrequencyRarity string `json:"frequencyRarity"`
	} `json:"agentAtlas"`
	AgentChronos struct {
		AgentReport
		TimeDecay     string `json:"timeDecay"`
		AgeEstimation string `json:"ageEstimation"`
	} `json:"agentChronos"`
	AgentTactus struct {
		AgentReport
		PressureMap string  `json:"pressureMap"`
		TouchForce  float64 `json:"touchForce"`
	} `json:"agentTactus"`
	AgentSpectra struct {
		AgentReport
		SpectralAnalysis          string `json:"spectralAnalysis"`
		ChemicalResidueSimulation string `json:"chemicalResidueSimulation"`
	} `json:"agentSpectra"`
}

type Phase4Reconstruction struct {
	AgentMorphix struct {
		AgentReport
		MissingRidgeReconstruction string  `json:"missingRidgeReconstruction"`
		PercentRestored            float64 `json:"percentRestored"`
	} `json:"agentMorphix"`
	AgentOrion struct {
		AgentReport
		PatternExtrapolation string `json:"patternExtrapolation"`
	} `json:"agentOrion"`
	AgentVulcan struct {
		AgentReport
		HeatDistortionSim  string `json:"heatDistortionSim"`
		PlasticDeformation bool   `json:"plasticDeformation"`
	} `json:"agentVulcan"`
	AgentHermes struct {
		AgentReport
		TransferMethod       string `json:"transferMethod"`
		MotionBlurCorrection string `json:"motionBlurCorrection"`
	} `json:"agentHermes"`
	AgentNemesis struct {
		AgentReport
		AntiSpoofingAdvanced string  `json:"antiSpoofingAdvanced"`
		LivenessScore        float64 `json:"livenessScore"`
	} `json:"agentNemesis"`
	AgentFornax struct {
		AgentReport
		DigitalNoiseFilter string  `json:"digitalNoiseFilter"`
		ArtifactRemoval    float64 `json:"artifactRemoval"`
	} `json:"agentFornax"`
}

type Phase5Consolidation struct {
	AgentAegis struct {
		AgentReport
		DefenseRebuttal string `json:"defenseRebuttal"`
		LoopholeCheck   string `json:"loopholeCheck"`
	} `json:"agentAegis"`
	AgentOmega struct {
		AgentReport
		FinalExpertStatement string  `json:"finalExpertStatement"`
		Admissibility        string  `json:"admissibility"` // "High" | "Medium" | "Low"
		LegalConfidence      float64 `json:"legalConfidence"`
	} `json:"agentOmega"`
}

// VisualMapping is the anatomical point map the UI overlays on both images.
type VisualMapping struct {
	Points []struct {
		Label      string  `json:"label"`
		Zone1      string  `json:"zone1"`
		Zone2      string  `json:"zone2"`
		Confidence float64 `json:"confidence"`
	} `json:"points"`
	Score      float64 `json:"score"`
	Conclusion string  `json:"conclusion"`
}

type FinalResult struct {
	MatchScore         float64 `json:"matchScore"` // 0-100
	IsMatch            bool    `json:"isMatch"`
	ConfidenceLevel    string  `json:"confidenceLevel"` // "High" | "Medium" | "Low"
	ForensicConclusion string  `json:"forensicConclusion"`
}
